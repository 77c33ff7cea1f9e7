// Package stream delivers result sets in bounded-memory chunks.
//
// A Cursor is a pull-based sequence of chunks: each Next call yields one
// chunk and nothing beyond it is produced, so however slowly the consumer
// pulls, at most one chunk is in flight. Cancellation of the Next context
// terminates production promptly.
//
// Writer encodes chunks as newline-delimited JSON, one self-contained
// array per line that is decodable before the next line arrives. Deliver
// pumps a cursor into a writer under that discipline. The blocking write
// to the transport is the backpressure point: chunk i+1 is not produced
// until the transport has accepted chunk i.
package stream
