package stream

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/tetsuzan/procgo/codec"
	"github.com/tetsuzan/procgo/model"
)

// Writer encodes chunks as newline-delimited JSON: one encoded array per
// line, each line independently parseable.
type Writer struct {
	w       io.Writer
	codec   codec.Codec
	limiter *rate.Limiter
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithCodec selects the chunk codec. Defaults to codec.Default.
func WithCodec(c codec.Codec) WriterOption {
	return func(w *Writer) {
		if c != nil {
			w.codec = c
		}
	}
}

// WithRateLimit caps chunk emission at limit chunks per second with the
// given burst. Useful when the transport buffers rather than blocks, so a
// slow client does not see minutes of data arrive in one burst.
func WithRateLimit(limit rate.Limit, burst int) WriterOption {
	return func(w *Writer) {
		w.limiter = rate.NewLimiter(limit, burst)
	}
}

// NewWriter creates a chunk writer over the transport writer.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	cw := &Writer{w: w, codec: codec.Default}
	for _, fn := range opts {
		fn(cw)
	}
	return cw
}

// WriteChunk encodes one chunk and hands it to the transport. It does not
// return until the transport accepts the bytes, which is what stalls the
// producer when the consumer falls behind.
func (w *Writer) WriteChunk(ctx context.Context, chunk []model.Record) error {
	if w.limiter != nil {
		if err := w.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	data, err := w.codec.Marshal(chunk)
	if err != nil {
		return fmt.Errorf("encode chunk: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("write chunk: %w", err)
	}
	return nil
}

// Deliver pumps a cursor into a writer until exhaustion. Each chunk is
// produced only after the previous one was accepted by the transport.
// Cancellation terminates delivery with the context's error; a clean
// exhaustion returns nil, leaving end-of-stream signaling to the
// transport's own protocol.
func Deliver(ctx context.Context, c *Cursor, w *Writer) error {
	for {
		chunk, err := c.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := w.WriteChunk(ctx, chunk); err != nil {
			return err
		}
	}
}
