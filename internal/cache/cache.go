// Package cache provides the read cache placed in front of the record store's
// hot-path queries. The cache is never the source of truth: any failure is
// expected to be handled by falling back to the store.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/plantops/crane-dashboard/internal/config"
)

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks -source=cache.go Cache

// Cache is a byte-oriented key/value cache with per-entry expiry
type Cache interface {
	// Get returns the value stored under key or ErrCacheMiss
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Clear drops every entry owned by this cache
	Clear(ctx context.Context) error
	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
	// Close releases the resources held by the cache
	Close() error
}

// New creates the cache selected by cfg
func New(ctx context.Context, cfg *config.CacheConfig) (Cache, error) {
	if cfg == nil {
		return NewMemoryCache(), nil
	}

	switch cfg.GetCacheType() {
	case config.CacheTypeMemory:
		slog.Info("Using in-memory read cache", "ttl", cfg.GetTTL())
		return NewMemoryCache(), nil
	case config.CacheTypeRedis:
		if cfg.Redis == nil {
			return nil, fmt.Errorf("redis configuration is required for cache type %s", config.CacheTypeRedis)
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			// Reads fall back to the store while Redis is down
			slog.Warn("Redis cache is not reachable yet", "addr", cfg.Redis.Addr, "error", err)
		}
		slog.Info("Using Redis read cache", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.GetKeyPrefix(), "ttl", cfg.GetTTL())
		return NewRedisCache(client, cfg.Redis.GetKeyPrefix()), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}
