package store

import (
	"context"
	"testing"
	"time"

	"dreamhouse/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisKV) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(&config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewRedisKV(client)
}

func TestRedisKV_SetGet(t *testing.T) {
	mr, kv := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v", time.Minute))

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
	assert.Equal(t, time.Minute, mr.TTL("k"))
}

func TestRedisKV_Miss(t *testing.T) {
	_, kv := setupTestRedis(t)

	_, err := kv.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisKV_Expiry(t *testing.T) {
	mr, kv := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v", time.Second))
	mr.FastForward(2 * time.Second)

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisKV_Ping(t *testing.T) {
	mr, kv := setupTestRedis(t)
	require.NoError(t, kv.Ping(context.Background()))

	mr.Close()
	assert.Error(t, kv.Ping(context.Background()))
}
