// Package stats computes summary statistics over record sets.
//
// Summarize is a single pass over its input, either the full store view
// or a query result, and never re-runs a query itself. Categorical tallies
// keep first-seen insertion order so that repeated runs over the same
// input render identically.
//
// Cache memoizes snapshots per canonical query key. It is deliberately an
// explicit cache with an explicit Invalidate, not a transparent memoizer:
// the only invalidation event is a store rebuild, and that rule should be
// visible at the call site.
package stats
