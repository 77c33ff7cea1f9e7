package procgo

import (
	"errors"

	"github.com/tetsuzan/procgo/ingest"
	"github.com/tetsuzan/procgo/store"
	"github.com/tetsuzan/procgo/stream"
)

var (
	// ErrNotFound is returned by Get when no record has the requested
	// procedure ID. A miss is an ordinary absence, not a fault.
	ErrNotFound = errors.New("procedure not found")

	// ErrMalformedSource re-exports the load-time parse failure. Fatal:
	// no store becomes queryable.
	ErrMalformedSource = ingest.ErrMalformedSource
)

// DuplicateIDError re-exports the build-time conflict between two
// differing rows that share a procedure ID.
type DuplicateIDError = store.DuplicateIDError

// InvalidChunkSizeError re-exports the chunk-size validation failure.
type InvalidChunkSizeError = stream.InvalidChunkSizeError
