// Package cache provides a small in-process TTL cache used to memoize
// catalog listing responses.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value      interface{}
	expiration int64
}

// Cache is a TTL-bound key/value store. Each instance is independently
// owned; there is no package-level singleton.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
}

// New creates a cache whose entries expire after defaultTTL.
func New(defaultTTL time.Duration) *Cache {
	return &Cache{
		items: make(map[string]entry),
		ttl:   defaultTTL,
	}
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry{
		value:      value,
		expiration: time.Now().Add(c.ttl).UnixNano(),
	}
}

// Get returns the value for key, or false if it is absent or expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found || time.Now().UnixNano() > item.expiration {
		return nil, false
	}
	return item.value, true
}

// Delete drops the entry for key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// DeleteByPrefix drops every entry whose key starts with prefix. Used to
// invalidate all cached listings of one catalog after a store mutation.
func (c *Cache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry)
}

// Size returns the number of entries, including any not yet evicted.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
