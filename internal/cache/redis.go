package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
)

var _ Store = (*RedisCache)(nil)

// RedisConfig configures a RedisCache.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	TTL       time.Duration

	// Consecutive failures before the breaker opens and how long it stays open.
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// RedisCache stores JSON-encoded values in Redis. Calls go through a circuit
// breaker so an unreachable server degrades to cache misses quickly.
type RedisCache struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *slog.Logger
}

func NewRedisCache(cfg RedisConfig, logger *slog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return newRedisCache(client, cfg, logger)
}

func newRedisCache(client *redis.Client, cfg RedisConfig, logger *slog.Logger) *RedisCache {
	if logger == nil {
		logger = slog.Default()
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	openTimeout := cfg.OpenTimeout
	if openTimeout == 0 {
		openTimeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        "redis-cache",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
	}

	return &RedisCache{
		client:  client,
		prefix:  cfg.KeyPrefix,
		ttl:     cfg.TTL,
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		logger:  logger,
	}
}

// Ping verifies connectivity at startup.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("redis cache: encoding value", "key", key, "error", err)
		return
	}
	_, err = c.breaker.Execute(func() ([]byte, error) {
		return nil, c.client.Set(ctx, c.prefix+key, data, c.ttl).Err()
	})
	if err != nil {
		c.logger.Warn("redis cache: set failed", "key", key, "error", err)
	}
}

// Get returns the raw JSON bytes; service.CacheService decodes them.
func (c *RedisCache) Get(ctx context.Context, key string) (interface{}, bool) {
	data, err := c.breaker.Execute(func() ([]byte, error) {
		return c.client.Get(ctx, c.prefix+key).Bytes()
	})
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis cache: get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return data, true
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	_, err := c.breaker.Execute(func() ([]byte, error) {
		return nil, c.client.Del(ctx, c.prefix+key).Err()
	})
	if err != nil {
		c.logger.Warn("redis cache: delete failed", "key", key, "error", err)
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
