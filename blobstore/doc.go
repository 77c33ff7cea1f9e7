// Package blobstore abstracts where the raw survey file and the parsed
// snapshot cache live.
//
// The engine reads its source exactly once per process start, so the
// interface is deliberately small: open a named blob for sequential
// reading, write a named blob in one shot. Backends exist for the local
// filesystem, memory (tests), Amazon S3 and MinIO/S3-compatible stores.
package blobstore
