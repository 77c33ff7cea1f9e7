// Package snapshot caches the parsed record set between process starts.
//
// Parsing the 75k-row survey CSV dominates cold-start time. A snapshot is
// the codec-encoded record slice, compressed, with a self-describing
// header (magic, version, codec name, compressor name, record count,
// checksum). On warm start the loader decodes the snapshot instead of
// re-parsing the CSV; any mismatch (wrong magic, unknown codec, checksum
// failure) makes the loader fall back to the CSV silently.
//
// A snapshot is an optimization of the loading layer, never a source of
// truth: deleting it is always safe.
package snapshot
