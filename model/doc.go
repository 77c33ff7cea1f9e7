// Package model defines the core types of the procedures dataset.
//
// # Schema
//
// The source survey is a fixed 38-column table. The column order is a
// constant of the dataset release, not something derived from the header
// text at runtime: Schema lists the columns in source order and FromRow
// maps a raw row positionally onto a Record.
//
// # Types
//
//   - Record: one administrative procedure, fully typed
//   - Field / FieldKind: one schema column and how its raw value is decoded
//   - Ordinal: dense, store-local row identifier (source row order)
//
// Multi-valued columns (information systems, life events, professions,
// submission organs) are split into string slices at decode time.
// Categorical labels are normalized (full-width parentheses, leading
// classification codes stripped) so that indexes and filters see one
// canonical spelling per value.
package model
