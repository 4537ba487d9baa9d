// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/modgate/internal/cache"
	"github.com/dangerclosesec/modgate/internal/config"
	"github.com/dangerclosesec/modgate/internal/domain"
)

// CacheService provides typed access to a cache.Store
type CacheService struct {
	store cache.Store
}

// CacheConfig holds configuration for the in-memory cache backend
type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

// NewCacheService creates a cache service backed by a process-local cache
func NewCacheService(cfg CacheConfig) *CacheService {
	store := cache.NewInMemoryCache(cfg.TTL, cfg.CleanupFreq)
	store.StartCleanup(context.Background())

	return &CacheService{store: store}
}

// NewCacheServiceWithStore wraps an existing store, e.g. a cache.RedisCache
func NewCacheServiceWithStore(store cache.Store) *CacheService {
	return &CacheService{store: store}
}

// NewCacheServiceFromConfig prefers Redis when configured and falls back to a
// process-local cache. Processes that share a Redis also share invalidations.
func NewCacheServiceFromConfig(ctx context.Context, cfg *config.Config, log *slog.Logger) (*CacheService, error) {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Redis.Addr == "" {
		return NewCacheService(CacheConfig{
			TTL:         cfg.Catalog.CacheTTL,
			CleanupFreq: cfg.Catalog.CleanupFreq,
		}), nil
	}

	rc := cache.NewRedisCache(cache.RedisConfig{
		Addr:             cfg.Redis.Addr,
		Password:         cfg.Redis.Password,
		DB:               cfg.Redis.DB,
		KeyPrefix:        "modgate:",
		TTL:              cfg.Catalog.CacheTTL,
		FailureThreshold: cfg.Catalog.BreakerTrips,
	}, log)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rc.Ping(ctx); err != nil {
		rc.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Redis.Addr, err)
	}
	log.Info("catalog cache backed by redis", "addr", cfg.Redis.Addr)
	return NewCacheServiceWithStore(rc), nil
}

// Set stores a value in the cache
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.store.Set(ctx, key, value)
	return nil
}

// Get retrieves a value from the cache into result
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	value, found := s.store.Get(ctx, key)
	if !found {
		return domain.ErrNotFound
	}

	switch v := value.(type) {
	case []byte:
		if err := json.Unmarshal(v, result); err != nil {
			return fmt.Errorf("unmarshaling cached value: %w", err)
		}
	default:
		if err := assignValue(value, result); err != nil {
			return fmt.Errorf("assigning cached value: %w", err)
		}
	}

	return nil
}

// GetOrSet retrieves a value from cache or fetches and stores it if not found
func (s *CacheService) GetOrSet(ctx context.Context, key string, result interface{}, fetchFunc func() (interface{}, error)) error {
	err := s.Get(ctx, key, result)
	if err == nil {
		return nil
	}

	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("getting from cache: %w", err)
	}

	value, err := fetchFunc()
	if err != nil {
		return fmt.Errorf("fetching value: %w", err)
	}

	if err := s.Set(ctx, key, value); err != nil {
		return fmt.Errorf("storing in cache: %w", err)
	}

	if err := assignValue(value, result); err != nil {
		return fmt.Errorf("assigning fetched value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.store.Delete(ctx, key)
	return nil
}

// Close releases the backing store
func (s *CacheService) Close() error {
	return s.store.Close()
}

// assignValue copies src into dst, round-tripping through JSON for differing types
func assignValue(src interface{}, dst interface{}) error {
	if v, ok := dst.(*interface{}); ok {
		*v = src
		return nil
	}

	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshaling value: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshaling value: %w", err)
	}

	return nil
}
