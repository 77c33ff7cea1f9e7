// Package s3 provides an Amazon S3 backend for blobstore.Store.
//
// Construct a client with the aws-sdk-go-v2 config loader:
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "procedures/")
package s3
