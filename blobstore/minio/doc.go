// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is S3-compatible object storage. The official MinIO Go client also
// talks to Ceph, SeaweedFS and Garage, so this store is the air-gap friendly
// alternative to the AWS-backed s3 package.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "points/")
//	idx := kdpoint.New[string](kdpoint.WithBlobStore(store))
package minio
