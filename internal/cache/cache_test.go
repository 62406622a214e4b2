package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is a map-backed CacheService for exercising the helpers
type memoryCache struct {
	data   map[string][]byte
	getErr error
	setErr error
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = data
	m.sets++
	return nil
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	data, ok := m.data[key]
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

type payload struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCacheOrExecute_MissThenHit(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()
	calls := 0
	fn := func() (*payload, error) {
		calls++
		return &payload{Name: "group-1", Score: 80}, nil
	}

	first, err := CacheOrExecute(ctx, c, discardLogger(), "k", time.Minute, fn)
	require.NoError(t, err)
	second, err := CacheOrExecute(ctx, c, discardLogger(), "k", time.Minute, fn)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.sets)
}

func TestCacheOrExecute_SourceErrorNotCached(t *testing.T) {
	c := newMemoryCache()
	boom := errors.New("boom")

	_, err := CacheOrExecute(context.Background(), c, discardLogger(), "k", time.Minute, func() (*payload, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, c.data)
}

func TestCacheOrExecute_CacheFailuresIgnored(t *testing.T) {
	c := newMemoryCache()
	c.getErr = errors.New("connection refused")
	c.setErr = errors.New("connection refused")

	got, err := CacheOrExecute(context.Background(), c, discardLogger(), "k", time.Minute, func() (*payload, error) {
		return &payload{Name: "fresh"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh", got.Name)
}

func TestNoopCache(t *testing.T) {
	c := NewRedisCache(nil, "practice", discardLogger())
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", payload{Name: "x"}, time.Minute))
	var p payload
	assert.ErrorIs(t, c.Get(ctx, "k", &p), ErrCacheMiss)
	assert.NoError(t, c.Delete(ctx, "k"))
}

