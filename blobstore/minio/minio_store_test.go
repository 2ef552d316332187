package minio

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/kdpoint/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Run("NoSuchKey", func(t *testing.T) {
		err := translate("x", minio.ErrorResponse{Code: "NoSuchKey"})
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("Other", func(t *testing.T) {
		boom := errors.New("boom")
		err := translate("x", boom)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, blobstore.ErrNotFound)
	})
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-kdpoint"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "test-prefix/")

	data := []byte("hello minio world")
	require.NoError(t, store.Put(ctx, "snapshot-1.kdp", data))

	got, err := store.Get(ctx, "snapshot-1.kdp")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "snapshot-")
	require.NoError(t, err)
	assert.Contains(t, names, "snapshot-1.kdp")

	require.NoError(t, store.Delete(ctx, "snapshot-1.kdp"))
	require.NoError(t, store.Delete(ctx, "snapshot-1.kdp"))

	_, err = store.Get(ctx, "snapshot-1.kdp")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
