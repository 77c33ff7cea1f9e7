package procgo

import (
	"github.com/tetsuzan/procgo/snapshot"
)

type options struct {
	logger    *Logger
	metrics   MetricsCollector
	chunkSize int
	snapName  string
	snapOpts  []snapshot.Option
}

// Option configures Open behavior.
type Option func(*options)

// WithLogger sets the logger. Defaults to a text logger at info level.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets the metrics collector. Defaults to
// NoopMetricsCollector.
func WithMetrics(collector MetricsCollector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// WithChunkSize sets the default chunk size for delivery cursors created
// without an explicit size. Values below 1 are ignored.
func WithChunkSize(size int) Option {
	return func(o *options) {
		if size >= 1 {
			o.chunkSize = size
		}
	}
}

// WithSnapshotCache enables the compressed snapshot cache under the given
// blob name in the same blobstore as the source. Warm starts decode the
// snapshot instead of re-parsing the CSV; a stale or foreign snapshot is
// a silent cache miss. Encoding options apply to newly written snapshots.
func WithSnapshotCache(name string, opts ...snapshot.Option) Option {
	return func(o *options) {
		o.snapName = name
		o.snapOpts = opts
	}
}
