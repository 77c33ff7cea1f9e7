// Package ingest turns the raw survey file into parsed records.
//
// Parse handles the framing quirks of the government release: a UTF-8 BOM,
// two non-schema header lines (a column-index line and a column-name line,
// neither authoritative), short rows padded to the fixed schema width, and
// blank rows skipped. The column schema itself lives in package model.
//
// Loader sits above Parse and decides where the bytes come from: a
// blobstore backend for the raw CSV, optionally short-circuited by a
// compressed snapshot of the previous parse (package snapshot).
package ingest
