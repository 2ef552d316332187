package s3

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/kdpoint/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDDBClient is an in-memory DynamoDB mock for testing.
type mockDDBClient struct {
	mu    sync.RWMutex
	items map[string]map[string]types.AttributeValue // base_uri:version -> item
}

func newMockDDBClient() *mockDDBClient {
	return &mockDDBClient{
		items: make(map[string]map[string]types.AttributeValue),
	}
}

func (m *mockDDBClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	baseURI := params.Item["base_uri"].(*types.AttributeValueMemberS).Value
	version := params.Item["version"].(*types.AttributeValueMemberN).Value
	key := baseURI + ":" + version

	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_not_exists(version)" {
		if _, exists := m.items[key]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}
		}
	}

	m.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *mockDDBClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	baseURI := params.ExpressionAttributeValues[":uri"].(*types.AttributeValueMemberS).Value

	var items []map[string]types.AttributeValue
	for _, item := range m.items {
		if item["base_uri"].(*types.AttributeValueMemberS).Value == baseURI {
			items = append(items, item)
		}
	}

	version := func(item map[string]types.AttributeValue) uint64 {
		v, _ := strconv.ParseUint(item["version"].(*types.AttributeValueMemberN).Value, 10, 64)
		return v
	}
	sort.Slice(items, func(i, j int) bool { return version(items[i]) > version(items[j]) })

	if params.Limit != nil && int(*params.Limit) < len(items) {
		items = items[:*params.Limit]
	}

	return &dynamodb.QueryOutput{Items: items}, nil
}

// staleDDBClient always reports version 0, simulating a writer that lost a race.
type staleDDBClient struct {
	*mockDDBClient
}

func (s staleDDBClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{}, nil
}

func newTestDDBCommitStore(ddb DDBClient, baseURI string) (*DDBCommitStore, *blobstore.MemoryStore) {
	mem := blobstore.NewMemoryStore()
	return NewDDBCommitStore(mem, ddb, "kdpoint-commits", baseURI), mem
}

func TestDDBCommitStore_CurrentMissing(t *testing.T) {
	store, _ := newTestDDBCommitStore(newMockDDBClient(), "s3://test-bucket/test/")

	_, err := store.Get(context.Background(), blobstore.Current)
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestDDBCommitStore_CommitAndRead(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestDDBCommitStore(newMockDDBClient(), "s3://test-bucket/test/")

	require.NoError(t, store.Put(ctx, blobstore.Current, []byte("snapshot-1.kdp")))

	data, err := store.Get(ctx, blobstore.Current)
	require.NoError(t, err)
	assert.Equal(t, "snapshot-1.kdp", string(data))

	// The pointer never reaches the underlying store.
	_, err = mem.Get(ctx, blobstore.Current)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestDDBCommitStore_LatestVersionWins(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestDDBCommitStore(newMockDDBClient(), "s3://test-bucket/test/")

	for i := 1; i <= 12; i++ {
		require.NoError(t, store.Put(ctx, blobstore.Current, []byte(fmt.Sprintf("snapshot-%d.kdp", i))))
	}

	data, err := store.Get(ctx, blobstore.Current)
	require.NoError(t, err)
	assert.Equal(t, "snapshot-12.kdp", string(data))
}

func TestDDBCommitStore_ConcurrentModification(t *testing.T) {
	ctx := context.Background()
	ddb := newMockDDBClient()
	store, _ := newTestDDBCommitStore(ddb, "s3://test-bucket/test/")
	require.NoError(t, store.Put(ctx, blobstore.Current, []byte("snapshot-1.kdp")))

	stale := NewDDBCommitStore(blobstore.NewMemoryStore(), staleDDBClient{ddb}, "kdpoint-commits", "s3://test-bucket/test/")
	err := stale.Put(ctx, blobstore.Current, []byte("snapshot-2.kdp"))
	require.ErrorIs(t, err, ErrConcurrentModification)

	data, err := store.Get(ctx, blobstore.Current)
	require.NoError(t, err)
	assert.Equal(t, "snapshot-1.kdp", string(data))
}

func TestDDBCommitStore_Isolation(t *testing.T) {
	ctx := context.Background()
	ddb := newMockDDBClient()

	storeA, _ := newTestDDBCommitStore(ddb, "s3://bucket-a/path/")
	storeB, _ := newTestDDBCommitStore(ddb, "s3://bucket-b/path/")

	require.NoError(t, storeA.Put(ctx, blobstore.Current, []byte("a.kdp")))
	require.NoError(t, storeB.Put(ctx, blobstore.Current, []byte("b.kdp")))

	a, err := storeA.Get(ctx, blobstore.Current)
	require.NoError(t, err)
	b, err := storeB.Get(ctx, blobstore.Current)
	require.NoError(t, err)
	assert.Equal(t, "a.kdp", string(a))
	assert.Equal(t, "b.kdp", string(b))
}

func TestDDBCommitStore_PassThrough(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestDDBCommitStore(newMockDDBClient(), "s3://test-bucket/test/")

	require.NoError(t, store.Put(ctx, "snapshot-1.kdp", []byte("data")))
	data, err := mem.Get(ctx, "snapshot-1.kdp")
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))

	names, err := store.List(ctx, "snapshot-")
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshot-1.kdp"}, names)

	require.NoError(t, store.Delete(ctx, "snapshot-1.kdp"))
	require.NoError(t, store.Delete(ctx, blobstore.Current))
	_, err = store.Get(ctx, "snapshot-1.kdp")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
