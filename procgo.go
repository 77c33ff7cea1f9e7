package procgo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/tetsuzan/procgo/blobstore"
	"github.com/tetsuzan/procgo/ingest"
	"github.com/tetsuzan/procgo/model"
	"github.com/tetsuzan/procgo/query"
	"github.com/tetsuzan/procgo/stats"
	"github.com/tetsuzan/procgo/store"
	"github.com/tetsuzan/procgo/stream"
)

// DefaultChunkSize is the delivery chunk size used when the caller does
// not override it.
const DefaultChunkSize = stream.DefaultChunkSize

// state bundles the store with its engine so a reload swaps both at once.
// Readers that grabbed the old state keep a consistent view until they
// finish; partially built state is never visible.
type state struct {
	store  *store.Store
	engine *query.Engine
	// cache lives and dies with its store: a rebuild installs a fresh
	// cache, so stale statistics can never leak across generations even
	// from requests in flight during the swap.
	cache *stats.Cache
}

// DB is the queryable handle over one loaded dataset.
//
// All read operations are safe for arbitrary concurrent use: the store is
// immutable after build, and Reload swaps the whole state atomically.
type DB struct {
	loader  *ingest.Loader
	current atomic.Pointer[state]
	logger  *Logger
	metrics MetricsCollector
	chunk   int
}

// Open loads the named survey blob from source and builds the queryable
// store. It fails (with ErrMalformedSource, *DuplicateIDError or a
// backend error) before any query can observe a partial store.
func Open(ctx context.Context, source blobstore.Store, name string, opts ...Option) (*DB, error) {
	db, o := newDB(opts...)

	loaderOpts := []ingest.LoaderOption{ingest.WithLogger(db.logger.Logger)}
	if o.snapName != "" {
		loaderOpts = append(loaderOpts, ingest.WithSnapshot(o.snapName, o.snapOpts...))
	}
	db.loader = ingest.NewLoader(source, name, loaderOpts...)

	if err := db.Reload(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenReader builds a DB from an already-open raw survey stream. Mainly
// for tests and embedded data; no snapshot cache and no Reload support.
func OpenReader(r io.Reader, opts ...Option) (*DB, error) {
	db, _ := newDB(opts...)
	records, err := ingest.Parse(r)
	if err != nil {
		return nil, err
	}
	if err := db.install(records, time.Now()); err != nil {
		return nil, err
	}
	return db, nil
}

// FromRecords builds a DB from parsed records. The caller keeps no right
// to mutate the slice afterwards.
func FromRecords(records []model.Record, opts ...Option) (*DB, error) {
	db, _ := newDB(opts...)
	if err := db.install(records, time.Now()); err != nil {
		return nil, err
	}
	return db, nil
}

func newDB(opts ...Option) (*DB, options) {
	o := options{
		logger:    NewTextLogger(slog.LevelInfo),
		metrics:   NoopMetricsCollector{},
		chunkSize: DefaultChunkSize,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return &DB{
		logger:  o.logger,
		metrics: o.metrics,
		chunk:   o.chunkSize,
	}, o
}

// Reload re-reads the source and swaps in a freshly built store. On any
// failure the previous store stays in service untouched. The statistics
// cache is dropped on success; snapshots never outlive the store they
// were computed against.
func (db *DB) Reload(ctx context.Context) error {
	if db.loader == nil {
		return fmt.Errorf("reload requires a blobstore-backed DB")
	}
	start := time.Now()
	records, err := db.loader.Load(ctx)
	if err != nil {
		db.metrics.RecordLoad(0, time.Since(start), err)
		return err
	}
	if err := db.install(records, start); err != nil {
		return err
	}
	return nil
}

func (db *DB) install(records []model.Record, start time.Time) error {
	s, err := store.Build(records)
	if err != nil {
		db.metrics.RecordLoad(0, time.Since(start), err)
		return err
	}
	db.current.Store(&state{store: s, engine: query.New(s), cache: stats.NewCache()})
	db.metrics.RecordLoad(s.Len(), time.Since(start), nil)
	db.logger.Info("store built", "records", s.Len(), "took", time.Since(start))
	return nil
}

func (db *DB) state() *state {
	return db.current.Load()
}

// Get returns the record with the given procedure ID, or ErrNotFound.
func (db *DB) Get(id string) (model.Record, error) {
	rec, ok := db.state().store.Get(id)
	if !ok {
		return model.Record{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return rec, nil
}

// Search returns the records matching q in source order.
func (db *DB) Search(q query.Query) []model.Record {
	start := time.Now()
	results := db.state().engine.Search(q)
	db.metrics.RecordSearch(len(results), time.Since(start))
	return results
}

// Count returns the number of matches for q, ignoring pagination.
func (db *DB) Count(q query.Query) int {
	return db.state().engine.Count(q)
}

// All returns every record in source order. Read-only view.
func (db *DB) All() []model.Record {
	return db.state().store.All()
}

// Len returns the number of records in the store.
func (db *DB) Len() int {
	return db.state().store.Len()
}

// FilterValues returns the distinct values of an indexed field, for
// populating dashboard filter choices.
func (db *DB) FilterValues(field store.IndexField) []string {
	return db.state().store.IndexValues(field)
}

// Summarize computes summary statistics over the records matching q's
// predicates (pagination is ignored). Results are cached per predicate
// set until the next Reload.
func (db *DB) Summarize(q query.Query) stats.Snapshot {
	start := time.Now()
	st := db.state()
	snap := st.cache.Get(q.Key(), func() stats.Snapshot {
		if q.IsZero() {
			return stats.Summarize(st.store.All())
		}
		ords := st.engine.Ordinals(q)
		subset := make([]model.Record, len(ords))
		for i, ord := range ords {
			subset[i] = st.store.At(ord)
		}
		return stats.Summarize(subset)
	})
	db.metrics.RecordSummarize(time.Since(start))
	return snap
}

// Chunks returns a delivery cursor over the records matching q. A size of
// 0 means the DB default; anything else below 1 fails with
// *InvalidChunkSizeError before any chunk is produced.
func (db *DB) Chunks(q query.Query, size int) (*stream.Cursor, error) {
	if size == 0 {
		size = db.chunk
	}
	return stream.Chunks(db.Search(q), size)
}

// Deliver streams the records matching q into w as newline-delimited
// JSON chunks, honoring transport backpressure chunk by chunk.
func (db *DB) Deliver(ctx context.Context, q query.Query, size int, w *stream.Writer) error {
	if size == 0 {
		size = db.chunk
	}
	start := time.Now()
	cur, err := db.Chunks(q, size)
	if err != nil {
		db.metrics.RecordDeliver(0, time.Since(start), err)
		return err
	}
	total := cur.Remaining()
	err = stream.Deliver(ctx, cur, w)
	chunks := (total - cur.Remaining() + size - 1) / size
	db.metrics.RecordDeliver(chunks, time.Since(start), err)
	return err
}
