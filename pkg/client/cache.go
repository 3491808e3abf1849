package client

import (
	"encoding/json"
	"sync"
)

// Cache holds the last known copy of a principal's collections, keyed by
// principal id and collection name. The owning Resource rewrites the whole
// collection after each of its own mutations; nothing else expires entries.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]json.RawMessage
}

type cacheKey struct {
	principal  string
	collection string
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]json.RawMessage)}
}

// Load decodes the cached collection into dst. It reports false on a miss.
func (c *Cache) Load(principal, collection string, dst any) bool {
	c.mu.RLock()
	raw, ok := c.entries[cacheKey{principal, collection}]
	c.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// Store replaces the cached collection with v.
func (c *Cache) Store(principal, collection string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[cacheKey{principal, collection}] = raw
	c.mu.Unlock()
	return nil
}

// Drop forgets one cached collection.
func (c *Cache) Drop(principal, collection string) {
	c.mu.Lock()
	delete(c.entries, cacheKey{principal, collection})
	c.mu.Unlock()
}

// Forget drops every collection cached for principal.
func (c *Cache) Forget(principal string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.principal == principal {
			delete(c.entries, k)
		}
	}
}
