package cache

import (
	"sync"
	"time"

	"estate-server/entities"
)

type propertyEntry struct {
	property entities.Property
	storedAt time.Time
}

// PropertyCache is an in-memory cache of property rows, shared by every
// component that renders a property. Entries expire after ttl.
type PropertyCache struct {
	mu      sync.RWMutex
	entries map[string]propertyEntry
	ttl     time.Duration
	hits    int64
	misses  int64
}

func NewPropertyCache(ttl time.Duration) *PropertyCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PropertyCache{
		entries: make(map[string]propertyEntry),
		ttl:     ttl,
	}
}

// Get returns a copy of the cached property, or false on miss/expiry.
func (c *PropertyCache) Get(id string) (*entities.Property, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		c.misses++
		return nil, false
	}
	if time.Since(entry.storedAt) > c.ttl {
		delete(c.entries, id)
		c.misses++
		return nil, false
	}
	c.hits++
	result := entry.property
	return &result, true
}

// Set stores a copy of the property.
func (c *PropertyCache) Set(p entities.Property) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[p.ID] = propertyEntry{property: p, storedAt: time.Now()}
}

// Invalidate drops one entry, typically after a mutation.
func (c *PropertyCache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Clear drops every entry.
func (c *PropertyCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]propertyEntry)
}

// Stats returns counters about the current cache.
func (c *PropertyCache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"entries":     len(c.entries),
		"hits":        c.hits,
		"misses":      c.misses,
		"ttl_seconds": c.ttl.Seconds(),
	}
}
