package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key does not exist
var ErrCacheMiss = errors.New("cache miss")

type CacheService interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
}

type redisCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisCache returns a JSON cache on top of redis. Keys are namespaced with prefix.
// A nil client yields a cache that never stores anything.
func NewRedisCache(client *redis.Client, prefix string, logger *slog.Logger) CacheService {
	if client == nil {
		return NewNoopCache()
	}
	return &redisCache{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (r *redisCache) key(key string) string {
	return r.prefix + ":" + key
}

func (r *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}
	return nil
}

func (r *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("failed to get cache key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// Stale or foreign payload, treat as a miss
		r.logger.Warn("Discarding undecodable cache entry", "key", key, "error", err)
		return ErrCacheMiss
	}
	return nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

type noopCache struct{}

// NewNoopCache returns a cache that always misses
func NewNoopCache() CacheService {
	return noopCache{}
}

func (noopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (noopCache) Get(context.Context, string, interface{}) error                { return ErrCacheMiss }
func (noopCache) Delete(context.Context, string) error                          { return nil }
