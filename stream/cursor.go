package stream

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/tetsuzan/procgo/model"
)

// DefaultChunkSize is the chunk size used when the caller does not
// override it.
const DefaultChunkSize = 100

// InvalidChunkSizeError indicates a chunk size below 1. It is rejected
// before any chunk is produced.
type InvalidChunkSizeError struct {
	Size int
}

func (e *InvalidChunkSizeError) Error() string {
	return fmt.Sprintf("invalid chunk size %d, must be >= 1", e.Size)
}

// Cursor yields a record sequence one chunk at a time. It is single-use
// and not safe for concurrent callers; each request gets its own cursor.
type Cursor struct {
	records []model.Record
	size    int
	pos     int
}

// Chunks creates a cursor over records with the given chunk size.
func Chunks(records []model.Record, size int) (*Cursor, error) {
	if size < 1 {
		return nil, &InvalidChunkSizeError{Size: size}
	}
	return &Cursor{records: records, size: size}, nil
}

// Next returns the next chunk. Chunks are windows into the source slice
// (no copying) and arrive in source order; every chunk is full-sized
// except possibly the last. Next returns io.EOF once the sequence is
// exhausted (there is no other end-of-stream marker) and the context's
// error if it is cancelled first.
func (c *Cursor) Next(ctx context.Context) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.pos >= len(c.records) {
		return nil, io.EOF
	}
	end := c.pos + c.size
	if end > len(c.records) {
		end = len(c.records)
	}
	chunk := c.records[c.pos:end:end]
	c.pos = end
	return chunk, nil
}

// Remaining returns the number of records not yet yielded.
func (c *Cursor) Remaining() int {
	return len(c.records) - c.pos
}

// Seq adapts the cursor to a range-over iterator. Breaking out of the
// loop stops production; a context error surfaces as the final pair.
func (c *Cursor) Seq(ctx context.Context) iter.Seq2[[]model.Record, error] {
	return func(yield func([]model.Record, error) bool) {
		for {
			chunk, err := c.Next(ctx)
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(chunk, nil) {
				return
			}
		}
	}
}
