package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Nothing listens on port 1, so every command fails fast with connection refused.
func unreachableRedis(t *testing.T, threshold uint32) *RedisCache {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	c := newRedisCache(client, RedisConfig{
		KeyPrefix:        "test:",
		TTL:              time.Minute,
		FailureThreshold: threshold,
		OpenTimeout:      time.Hour,
	}, nil)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisCacheDegradesToMiss(t *testing.T) {
	c := unreachableRedis(t, 2)
	ctx := context.Background()

	_, ok := c.Get(ctx, "modules:catalog")
	assert.False(t, ok)
	assert.Equal(t, gobreaker.StateClosed, c.breaker.State())

	c.Set(ctx, "modules:catalog", []string{"CRM"})
	assert.Equal(t, gobreaker.StateOpen, c.breaker.State())

	// While open, calls short-circuit without touching the network.
	start := time.Now()
	_, ok = c.Get(ctx, "modules:catalog")
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRedisCacheKeepsEncodingErrorsOutOfBreaker(t *testing.T) {
	c := unreachableRedis(t, 1)

	c.Set(context.Background(), "bad", func() {})
	assert.Equal(t, gobreaker.StateClosed, c.breaker.State())
}

func TestRedisCachePing(t *testing.T) {
	c := unreachableRedis(t, 5)
	require.Error(t, c.Ping(context.Background()))
}
