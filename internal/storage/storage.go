package storage

import (
	"context"
	"io"
)

// BlobStore stores uploaded files and returns public URLs for them.
type BlobStore interface {
	// Put stores the object under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
