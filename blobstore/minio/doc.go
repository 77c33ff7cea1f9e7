// Package minio provides a MinIO / S3-compatible backend for
// blobstore.Store.
package minio
