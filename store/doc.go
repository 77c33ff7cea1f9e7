// Package store holds the immutable, indexed record collection.
//
// Build runs once, synchronously, before any query is served. After Build
// returns the Store never mutates, so arbitrarily many queries, aggregates
// and delivery cursors may read it concurrently without locking.
//
// Records keep their source row order; the dense ordinal of a record in
// that order is what the secondary indexes store. Posting lists are
// Roaring bitmaps keyed by field value, so multi-predicate filters reduce
// to bitmap intersections whose iteration order is ascending ordinal,
// which is exactly source order, keeping pagination deterministic.
package store
