package objectstorage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type DownloadObjectOption = func(*s3.GetObjectInput)

func WithDownloadRange(start int, end int) DownloadObjectOption {
	f := func(in *s3.GetObjectInput) {
		r := fmt.Sprintf("bytes=%d-%d", start, end)
		in.Range = &r
	}
	return f
}

// ObjectStore is the interface for reading and writing objects in an external
// storage service such as AWS S3, or on the local filesystem.
type ObjectStore interface {
	DownloadObject(ctx context.Context, path string, opts ...DownloadObjectOption) (io.Reader, error)
	UploadObject(ctx context.Context, path string, body io.Reader) error
	ListObjects(ctx context.Context, path string) ([]string, error)
}

// ObjectStoreFactory creates the ObjectStore matching the scheme of the
// provided path: s3:// paths get an AWS S3 store, anything else the local
// filesystem store.
func ObjectStoreFactory(ctx context.Context, path string) (ObjectStore, error) {
	switch {
	case strings.HasPrefix(path, "s3://"):
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load AWS configuration: %w", err)
		}
		return NewAwsS3ObjectStore(ctx, cfg), nil
	default:
		return NewLocalObjectStore(), nil
	}
}

// AWS S3 implementation of ObjectStore. Transfers go through the plain S3
// client; the s3/manager feature package would help for large objects.

func splitS3Path(path string) (bucket string, key string, err error) {
	if !strings.HasPrefix(path, "s3://") {
		return "", "", fmt.Errorf("path does not contain s3:// protocol prefix: %s", path)
	}
	bucket, key, found := strings.Cut(path[5:], "/")
	if !found {
		return "", "", fmt.Errorf("error occurred when retrieving bucket and key from: %s", path)
	}
	return bucket, key, nil
}

type awsS3ObjectStore struct {
	s3Client *s3.Client
}

func NewAwsS3ObjectStore(ctx context.Context, cfg aws.Config) ObjectStore {
	return &awsS3ObjectStore{s3Client: s3.NewFromConfig(cfg)}
}

func (store *awsS3ObjectStore) DownloadObject(ctx context.Context, path string, opts ...DownloadObjectOption) (io.Reader, error) {
	s3Bucket, s3Key, err := splitS3Path(path)
	if err != nil {
		return nil, err
	}
	in := s3.GetObjectInput{
		Bucket: &s3Bucket,
		Key:    &s3Key,
	}
	for _, opt := range opts {
		opt(&in)
	}
	getObjectOutput, err := store.s3Client.GetObject(ctx, &in)
	if err != nil {
		return nil, err
	}
	return getObjectOutput.Body, nil
}

func (store *awsS3ObjectStore) UploadObject(ctx context.Context, path string, body io.Reader) error {
	s3Bucket, s3Key, err := splitS3Path(path)
	if err != nil {
		return err
	}
	_, err = store.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s3Bucket,
		Key:    &s3Key,
		Body:   body,
	})
	return err
}

func (store *awsS3ObjectStore) ListObjects(ctx context.Context, path string) ([]string, error) {
	s3Bucket, s3Key, err := splitS3Path(path)
	if err != nil {
		return nil, err
	}
	listObjectOutput, err := store.s3Client.ListObjectsV2(
		ctx,
		// TODO: paginate with ContinuationToken, this caps out at 1,000 keys
		&s3.ListObjectsV2Input{
			Bucket: &s3Bucket,
			Prefix: &s3Key,
		},
	)
	if err != nil {
		return nil, err
	}
	objectPaths := []string{}
	for _, objMetadata := range listObjectOutput.Contents {
		objectPaths = append(objectPaths, fmt.Sprintf("s3://%s/%s", s3Bucket, *objMetadata.Key))
	}
	return objectPaths, nil
}
