package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantops/crane-dashboard/internal/config"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	c := newMemoryCache(func() time.Time { return now })
	ctx := context.Background()

	_, err := c.Get(ctx, "cranes")
	require.ErrorIs(t, err, ErrCacheMiss)

	value := []byte(`[{"craneId":"CR-001"}]`)
	require.NoError(t, c.Set(ctx, "cranes", value, time.Minute))

	// Stored values are private copies
	value[0] = 'X'
	got, err := c.Get(ctx, "cranes")
	require.NoError(t, err)
	assert.Equal(t, `[{"craneId":"CR-001"}]`, string(got))

	now = now.Add(59 * time.Second)
	_, err = c.Get(ctx, "cranes")
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = c.Get(ctx, "cranes")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "forever", []byte("1"), 0))
	now = now.Add(24 * time.Hour)
	_, err = c.Get(ctx, "forever")
	require.NoError(t, err)

	require.NoError(t, c.Clear(ctx))
	_, err = c.Get(ctx, "forever")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Ping(ctx))
	require.NoError(t, c.Close())
}

func TestRedisCache_GetSet(t *testing.T) {
	t.Parallel()

	mr, client := setupTestRedis(t)
	c := NewRedisCache(client, "test:")
	ctx := context.Background()

	_, err := c.Get(ctx, "summary")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "summary", []byte(`{"totalCranes":5}`), time.Minute))
	assert.True(t, mr.Exists("test:summary"))

	got, err := c.Get(ctx, "summary")
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalCranes":5}`, string(got))

	mr.FastForward(2 * time.Minute)
	_, err = c.Get(ctx, "summary")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Ping(ctx))
}

func TestRedisCache_ClearOnlyOwnPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys int
	}{
		{name: "empty", keys: 0},
		{name: "single key", keys: 1},
		{name: "exactly one batch", keys: scanBatchSize},
		{name: "one past a batch", keys: scanBatchSize + 1},
		{name: "several batches", keys: 450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mr, client := setupTestRedis(t)
			c := NewRedisCache(client, "dash:")
			ctx := context.Background()

			for i := 0; i < tt.keys; i++ {
				require.NoError(t, c.Set(ctx, fmt.Sprintf("key-%d", i), []byte("v"), 0))
			}
			require.NoError(t, mr.Set("other:key", "keep"))

			require.NoError(t, c.Clear(ctx))

			assert.Equal(t, []string{"other:key"}, mr.Keys())
			_, err := c.Get(ctx, "key-0")
			require.ErrorIs(t, err, ErrCacheMiss)
		})
	}
}

func TestRedisCache_Unreachable(t *testing.T) {
	t.Parallel()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	c := NewRedisCache(client, "dash:")
	mr.Close()

	ctx := context.Background()
	_, err = c.Get(ctx, "summary")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	require.Error(t, c.Set(ctx, "summary", []byte("x"), time.Minute))
	require.Error(t, c.Ping(ctx))
}

func TestNew(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     *config.CacheConfig
		wantErr bool
		check   func(t *testing.T, c Cache)
	}{
		{
			name: "nil config defaults to memory",
			cfg:  nil,
			check: func(t *testing.T, c Cache) {
				t.Helper()
				assert.IsType(t, &memoryCache{}, c)
			},
		},
		{
			name: "memory",
			cfg:  &config.CacheConfig{Type: config.CacheTypeMemory},
			check: func(t *testing.T, c Cache) {
				t.Helper()
				assert.IsType(t, &memoryCache{}, c)
			},
		},
		{
			name: "redis",
			cfg: &config.CacheConfig{
				Type:  config.CacheTypeRedis,
				Redis: &config.RedisConfig{Addr: mr.Addr()},
			},
			check: func(t *testing.T, c Cache) {
				t.Helper()
				rc, ok := c.(*redisCache)
				require.True(t, ok)
				assert.Equal(t, config.DefaultRedisKeyPrefix, rc.prefix)
				require.NoError(t, c.Ping(ctx))
			},
		},
		{
			name:    "redis without settings",
			cfg:     &config.CacheConfig{Type: config.CacheTypeRedis},
			wantErr: true,
		},
		{
			name:    "unknown type",
			cfg:     &config.CacheConfig{Type: "disk"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := New(ctx, tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { _ = c.Close() })
			tt.check(t, c)
		})
	}
}
