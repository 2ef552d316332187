// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("points/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	idx := kdpoint.New[string](kdpoint.WithBlobStore(store))
//
// # Features
//
//   - Multipart uploads for large snapshots
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Optional DynamoDB commit log for the CURRENT pointer (see DDBCommitStore)
package s3
