// Package cache provides the key/value stores behind service.CacheService.
package cache

import (
	"context"
	"time"
)

// Store is a TTL key/value store. Backends that cannot reach their server
// report a miss rather than an error; callers fall back to the source of truth.
type Store interface {
	Set(ctx context.Context, key string, value interface{})
	Get(ctx context.Context, key string) (interface{}, bool)
	Delete(ctx context.Context, key string)
	Close() error
}

type item struct {
	value     interface{}
	expiresAt time.Time
}

func (i item) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && now.After(i.expiresAt)
}
