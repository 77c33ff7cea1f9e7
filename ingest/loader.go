package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tetsuzan/procgo/blobstore"
	"github.com/tetsuzan/procgo/model"
	"github.com/tetsuzan/procgo/snapshot"
)

// Loader reads the record set from a blobstore, preferring a snapshot of
// the previous parse when one is available and decodable.
type Loader struct {
	source   blobstore.Store
	name     string
	snapName string
	snapOpts []snapshot.Option
	logger   *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithSnapshot enables the snapshot cache under the given blob name.
// Encoding options apply to newly written snapshots only; existing
// snapshots are self-describing.
func WithSnapshot(name string, opts ...snapshot.Option) LoaderOption {
	return func(l *Loader) {
		l.snapName = name
		l.snapOpts = opts
	}
}

// WithLogger sets the loader's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader that reads the raw survey from the named blob.
func NewLoader(source blobstore.Store, name string, opts ...LoaderOption) *Loader {
	l := &Loader{
		source: source,
		name:   name,
		logger: slog.Default(),
	}
	for _, fn := range opts {
		fn(l)
	}
	return l
}

// Load returns the parsed records.
//
// A decodable snapshot short-circuits the CSV parse entirely. Snapshot
// failures of any kind are cache misses: Load falls back to the CSV and,
// when that succeeds, rewrites the snapshot best-effort. Only source
// failures are fatal.
func (l *Loader) Load(ctx context.Context) ([]model.Record, error) {
	if records, ok := l.loadSnapshot(ctx); ok {
		return records, nil
	}

	rc, err := l.source.Open(ctx, l.name)
	if err != nil {
		return nil, fmt.Errorf("open source %q: %w", l.name, err)
	}
	defer rc.Close()

	records, err := Parse(rc)
	if err != nil {
		return nil, err
	}
	l.logger.Info("parsed source", "name", l.name, "records", len(records))

	l.writeSnapshot(ctx, records)
	return records, nil
}

func (l *Loader) loadSnapshot(ctx context.Context) ([]model.Record, bool) {
	if l.snapName == "" {
		return nil, false
	}
	rc, err := l.source.Open(ctx, l.snapName)
	if err != nil {
		return nil, false
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		l.logger.Warn("snapshot read failed", "name", l.snapName, "error", err)
		return nil, false
	}
	records, err := snapshot.Decode(data)
	if err != nil {
		l.logger.Warn("snapshot unusable, reparsing source", "name", l.snapName, "error", err)
		return nil, false
	}
	l.logger.Info("loaded snapshot", "name", l.snapName, "records", len(records))
	return records, true
}

func (l *Loader) writeSnapshot(ctx context.Context, records []model.Record) {
	if l.snapName == "" {
		return
	}
	data, err := snapshot.Encode(records, l.snapOpts...)
	if err != nil {
		l.logger.Warn("snapshot encode failed", "name", l.snapName, "error", err)
		return
	}
	if err := l.source.Put(ctx, l.snapName, data); err != nil {
		l.logger.Warn("snapshot write failed", "name", l.snapName, "error", err)
		return
	}
	l.logger.Info("wrote snapshot", "name", l.snapName, "bytes", len(data))
}
