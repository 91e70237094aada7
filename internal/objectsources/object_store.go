package objectsources

import (
	"context"
	"io"

	"elb-log-reports/internal/shared/filestorages"
)

// ObjectStore is the raw bucket view: list keys under a prefix and open one object.
//
//go:generate mockgen -source=object_store.go -destination=./mocks/object_store_mock.go -package=mocks
type ObjectStore interface {
	// List returns keys starting with prefix in the backend's listing order (lexicographic).
	List(ctx context.Context, prefix string) ([]string, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// NewLocalStore serves objects from a directory laid out like the bucket.
func NewLocalStore(rootDir string) (ObjectStore, error) {
	storage, err := filestorages.NewFileStorage(rootDir)
	if err != nil {
		return nil, errBucketInaccessible(rootDir, err)
	}
	return storage, nil
}
