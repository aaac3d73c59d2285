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

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(mr.Addr(), "", 0)
	require.NoError(t, err)
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	require.NoError(t, err)
	assert.Equal(t, "PONG", pong)
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Connect(addr, "", 0)
	assert.Error(t, err)
}

func TestRedisCache_SetGet(t *testing.T) {
	_, client := newTestRedis(t)
	rc := NewRedisCache(client, time.Minute)
	ctx := context.Background()

	_, ok := rc.Get(ctx, "blogs:/api/v1/blogs/published")
	assert.False(t, ok)

	rc.Set(ctx, "blogs:/api/v1/blogs/published", []byte(`{"data":[]}`))

	data, ok := rc.Get(ctx, "blogs:/api/v1/blogs/published")
	assert.True(t, ok)
	assert.Equal(t, `{"data":[]}`, string(data))
}

func TestRedisCache_Expires(t *testing.T) {
	mr, client := newTestRedis(t)
	rc := NewRedisCache(client, time.Minute)
	ctx := context.Background()

	rc.Set(ctx, "tours:/x", []byte("x"))
	mr.FastForward(2 * time.Minute)

	_, ok := rc.Get(ctx, "tours:/x")
	assert.False(t, ok)
}

func TestRedisCache_InvalidatePrefix(t *testing.T) {
	_, client := newTestRedis(t)
	rc := NewRedisCache(client, time.Minute)
	ctx := context.Background()

	rc.Set(ctx, "blogs:/a", []byte("a"))
	rc.Set(ctx, "blogs:/b", []byte("b"))
	rc.Set(ctx, "tours:/c", []byte("c"))

	rc.InvalidatePrefix(ctx, "blogs:")

	_, ok := rc.Get(ctx, "blogs:/a")
	assert.False(t, ok)
	_, ok = rc.Get(ctx, "blogs:/b")
	assert.False(t, ok)
	_, ok = rc.Get(ctx, "tours:/c")
	assert.True(t, ok)
}

func TestNewRedisCache_DefaultTTL(t *testing.T) {
	_, client := newTestRedis(t)
	rc := NewRedisCache(client, 0)
	assert.Equal(t, DefaultTTL, rc.ttl)
}

func TestMemoryCache(t *testing.T) {
	mc := NewMemoryCache(time.Minute)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mc.now = func() time.Time { return now }
	ctx := context.Background()

	mc.Set(ctx, "blogs:/a", []byte("a"))
	mc.Set(ctx, "visa:/b", []byte("b"))

	data, ok := mc.Get(ctx, "blogs:/a")
	assert.True(t, ok)
	assert.Equal(t, "a", string(data))

	mc.InvalidatePrefix(ctx, "blogs:")
	_, ok = mc.Get(ctx, "blogs:/a")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = mc.Get(ctx, "visa:/b")
	assert.False(t, ok)
}
