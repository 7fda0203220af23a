package objectstorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Local filesystem implementation of ObjectStore. Paths are plain filesystem
// paths; download range options are an S3 concern and are ignored here.
type localObjectStore struct{}

func NewLocalObjectStore() ObjectStore {
	return &localObjectStore{}
}

func trimFileScheme(path string) string {
	return strings.TrimPrefix(path, "file://")
}

func (store *localObjectStore) DownloadObject(ctx context.Context, path string, opts ...DownloadObjectOption) (io.Reader, error) {
	data, err := os.ReadFile(trimFileScheme(path))
	if err != nil {
		return nil, fmt.Errorf("unable to read local object: %w", err)
	}
	return bytes.NewReader(data), nil
}

func (store *localObjectStore) UploadObject(ctx context.Context, path string, body io.Reader) error {
	path = trimFileScheme(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("unable to create directory for local object: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create local object: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, body); err != nil {
		return fmt.Errorf("unable to write local object: %w", err)
	}
	return nil
}

func (store *localObjectStore) ListObjects(ctx context.Context, path string) ([]string, error) {
	root := trimFileScheme(path)
	objectPaths := []string{}
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			objectPaths = append(objectPaths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return objectPaths, nil
}
