package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerdesk/brokerage-service/internal/domain"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestRedisCollection_Contract(t *testing.T) {
	client := newTestRedis(t)
	runCollectionContract(t, func(t *testing.T) Collection {
		return NewRedisCollection(client, "test:"+uuid.NewString())
	})
}

func TestRedisCollection_UnknownIDIsSilent(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	c := NewRedisCollection(client, "test:"+uuid.NewString())

	_, err := c.Insert(ctx, domain.Document{"code": "E01"})
	require.NoError(t, err)

	ghost := uuid.NewString()
	assert.NoError(t, c.Replace(ctx, ghost, domain.Document{"code": "X"}))
	assert.NoError(t, c.Remove(ctx, "not-a-uuid"))

	exists, err := client.Exists(ctx, c.docKey(ghost)).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)

	records, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "E01", records[0].Document.String("code"))
}
