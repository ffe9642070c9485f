package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisWithClient(client, DefaultConfig())
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestNewRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	c, err := NewRedis(RedisConfig{Addr: mr.Addr(), Config: DefaultConfig()})
	require.NoError(t, err)
	assert.NotNil(t, c)
	defer c.Close()
}

func TestNewRedis_ConnectionError(t *testing.T) {
	_, err := NewRedis(RedisConfig{Addr: "localhost:1", Config: DefaultConfig()})
	assert.Error(t, err)
}

func TestRedis_SetAndGet(t *testing.T) {
	c, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "catalog", []byte(`{"types":[]}`), time.Minute))

	got, err := c.Get(ctx, "catalog")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"types":[]}`), got)
}

func TestRedis_GetMissing(t *testing.T) {
	c, _ := setupTestRedis(t)

	_, err := c.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, IsMiss(err))
}

func TestRedis_Expiration(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "catalog", []byte("doc"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "catalog")
	assert.True(t, IsMiss(err))
}

func TestRedis_Delete(t *testing.T) {
	c, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "catalog", []byte("doc"), time.Minute))
	require.NoError(t, c.Delete(ctx, "catalog"))

	_, err := c.Get(ctx, "catalog")
	assert.True(t, IsMiss(err))
}

func TestRedis_KeyPrefix(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "catalog", []byte("doc"), time.Minute))
	assert.True(t, mr.Exists("initforge:metadata:catalog"))
}
