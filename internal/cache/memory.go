package cache

import (
	"context"
	"sync"
	"time"
)

var _ Store = (*InMemoryCache)(nil)

// InMemoryCache is a process-local TTL cache with a background janitor.
type InMemoryCache struct {
	mu          sync.RWMutex
	items       map[string]item
	ttl         time.Duration
	cleanupFreq time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

// NewInMemoryCache creates a cache whose entries live for ttl. A zero ttl keeps entries forever.
func NewInMemoryCache(ttl, cleanupFreq time.Duration) *InMemoryCache {
	return &InMemoryCache{
		items:       make(map[string]item),
		ttl:         ttl,
		cleanupFreq: cleanupFreq,
		stop:        make(chan struct{}),
		now:         time.Now,
	}
}

func (c *InMemoryCache) Set(ctx context.Context, key string, value interface{}) {
	it := item{value: value}
	if c.ttl > 0 {
		it.expiresAt = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.items[key] = it
	c.mu.Unlock()
}

func (c *InMemoryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || it.expired(c.now()) {
		return nil, false
	}
	return it.value, true
}

func (c *InMemoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// StartCleanup evicts expired entries every cleanupFreq until ctx is done or StopCleanup is called.
func (c *InMemoryCache) StartCleanup(ctx context.Context) {
	if c.cleanupFreq <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(c.cleanupFreq)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.evictExpired()
			case <-c.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *InMemoryCache) StopCleanup() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *InMemoryCache) Close() error {
	c.StopCleanup()
	return nil
}

func (c *InMemoryCache) evictExpired() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, it := range c.items {
		if it.expired(now) {
			delete(c.items, k)
		}
	}
}

// Len returns the number of stored entries, expired or not.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
