package procgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each load or reload attempt.
	// records is the number of records built into the store, 0 on failure.
	RecordLoad(records int, duration time.Duration, err error)

	// RecordSearch is called after each search.
	// matches is the number of records returned after pagination.
	RecordSearch(matches int, duration time.Duration)

	// RecordSummarize is called after each statistics computation,
	// including cache hits (which report near-zero durations).
	RecordSummarize(duration time.Duration)

	// RecordDeliver is called after a chunked delivery finishes.
	// chunks is the number of chunks handed to the transport; err is nil
	// on clean exhaustion.
	RecordDeliver(chunks int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration)         {}
func (NoopMetricsCollector) RecordSummarize(time.Duration)           {}
func (NoopMetricsCollector) RecordDeliver(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount         atomic.Int64
	LoadErrors        atomic.Int64
	SearchCount       atomic.Int64
	SearchTotalNanos  atomic.Int64
	SummarizeCount    atomic.Int64
	DeliverCount      atomic.Int64
	DeliverErrors     atomic.Int64
	DeliveredChunks   atomic.Int64
	DeliverTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (m *BasicMetricsCollector) RecordLoad(_ int, _ time.Duration, err error) {
	m.LoadCount.Add(1)
	if err != nil {
		m.LoadErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (m *BasicMetricsCollector) RecordSearch(_ int, d time.Duration) {
	m.SearchCount.Add(1)
	m.SearchTotalNanos.Add(int64(d))
}

// RecordSummarize implements MetricsCollector.
func (m *BasicMetricsCollector) RecordSummarize(time.Duration) {
	m.SummarizeCount.Add(1)
}

// RecordDeliver implements MetricsCollector.
func (m *BasicMetricsCollector) RecordDeliver(chunks int, d time.Duration, err error) {
	m.DeliverCount.Add(1)
	m.DeliveredChunks.Add(int64(chunks))
	m.DeliverTotalNanos.Add(int64(d))
	if err != nil {
		m.DeliverErrors.Add(1)
	}
}
