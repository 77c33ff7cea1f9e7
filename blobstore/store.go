package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading and writing named data blobs.
type Store interface {
	// Open opens a blob for sequential reading.
	// The caller owns the returned reader and must close it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Put writes a blob in one shot, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error
}
