// Package schemastore persists schema specifications in object storage. The
// YAML specification is the only representation ever written; no dataset data
// passes through this package.
package schemastore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zbxzc35/tensorfx/pkg/logging/timing"
	"github.com/zbxzc35/tensorfx/pkg/objectstorage"
	"github.com/zbxzc35/tensorfx/pkg/schema"
)

const SchemaFilename = "schema.yaml"

// Store reads and writes named, versioned schema specifications.
type Store interface {
	// Writes the schema, returning the ID of the revision created
	PutSchema(ctx context.Context, name string, version string, s *schema.Schema) (string, error)

	// Reads back the current schema for the given name and version
	GetSchema(ctx context.Context, name string, version string) (*schema.Schema, error)
}

// Object-store backed Store. BasePath is the root all schemas live under,
// e.g. s3://<bucket>/<prefix> or a local directory.
type StorageClient struct {
	BasePath    string
	ObjectStore objectstorage.ObjectStore
}

// NewStorageClient creates a Store rooted at basePath, selecting the object
// store implementation from the path scheme.
func NewStorageClient(ctx context.Context, basePath string) (*StorageClient, error) {
	store, err := objectstorage.ObjectStoreFactory(ctx, basePath)
	if err != nil {
		return nil, err
	}
	return &StorageClient{BasePath: basePath, ObjectStore: store}, nil
}

func (client *StorageClient) schemaPath(name string, version string) string {
	return joinPath(client.BasePath, name, version, SchemaFilename)
}

func (client *StorageClient) revisionPath(name string, version string, revision string) string {
	return joinPath(client.BasePath, name, version, "revisions", revision+".yaml")
}

// filepath.Join strips the double slash out of scheme prefixes, so the scheme
// is split off before joining.
func joinPath(base string, elem ...string) string {
	for _, scheme := range []string{"s3://", "file://"} {
		if strings.HasPrefix(base, scheme) {
			return scheme + filepath.Join(append([]string{base[len(scheme):]}, elem...)...)
		}
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

func (client *StorageClient) PutSchema(ctx context.Context, name string, version string, s *schema.Schema) (string, error) {
	defer timing.Timeit("PutSchema", name)()

	spec, err := s.Format()
	if err != nil {
		return "", err
	}

	revision := uuid.New().String()
	revisionPath := client.revisionPath(name, version, revision)
	if err := client.ObjectStore.UploadObject(ctx, revisionPath, bytes.NewBufferString(spec)); err != nil {
		return "", fmt.Errorf("unable to write schema revision: %w", err)
	}

	schemaPath := client.schemaPath(name, version)
	if err := client.ObjectStore.UploadObject(ctx, schemaPath, bytes.NewBufferString(spec)); err != nil {
		return "", fmt.Errorf("unable to write schema: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"name":     name,
		"version":  version,
		"revision": revision,
	}).Info("stored schema")
	return revision, nil
}

func (client *StorageClient) GetSchema(ctx context.Context, name string, version string) (*schema.Schema, error) {
	defer timing.Timeit("GetSchema", name)()

	body, err := client.ObjectStore.DownloadObject(ctx, client.schemaPath(name, version))
	if err != nil {
		return nil, fmt.Errorf("unable to read schema: %w", err)
	}
	spec, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("unable to read schema: %w", err)
	}
	return schema.Parse(spec)
}
