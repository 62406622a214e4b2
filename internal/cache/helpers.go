package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// CacheOrExecute loads key into dest, or runs fn, stores its result and decodes it into dest.
// Cache errors never fail the call; only fn's error is returned.
func CacheOrExecute[T any](ctx context.Context, c CacheService, logger *slog.Logger, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	var cached T
	err := c.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		logger.Warn("Cache read failed, falling back to source", "key", key, "error", err)
	}

	value, err := fn()
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		logger.Warn("Cache write failed", "key", key, "error", err)
	}
	return value, nil
}
