// Package blobstore provides storage abstraction for kdpoint snapshots.
//
// BlobStore is the interface for reading and writing whole, immutable blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests and ephemeral indexes
//   - LocalStore: local file system with atomic writes
//   - s3.Store: Amazon S3
//   - s3.DDBCommitStore: S3 with DynamoDB-backed atomic CURRENT pointer
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Get(ctx, name) ([]byte, error)
//	    Put(ctx, name, data) error   // atomic write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Get must return an error satisfying errors.Is(err, ErrNotFound) for a
// missing blob.
package blobstore
