package cache

import (
	"sync"
	"time"
)

// Cache is a small in-memory TTL cache, used to keep the dashboard payload
// from being rebuilt on every poll.
type Cache struct {
	mu    sync.RWMutex
	items map[string]item
}

type item struct {
	value   any
	expires time.Time
}

func New() *Cache {
	return &Cache{items: make(map[string]item)}
}

// Get returns the cached value, or nil when missing or expired.
func (c *Cache) Get(key string) any {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil
	}
	if time.Now().After(it.expires) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil
	}
	return it.value
}

func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	c.items[key] = item{value: value, expires: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// Invalidate drops one key, used after mutations that must be visible on
// the next read.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}
