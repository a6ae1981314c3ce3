package owm

import (
	"sync"
	"time"
)

// Cache stores raw response bodies keyed by the fully composed request
// URL, so distinct queries never collide. Freshness is the capability's
// decision; the client only supplies the TTL it was configured with.
type Cache interface {
	IsFresh(key string, ttl time.Duration) bool
	Get(key string) (string, bool)
	Put(key, body string)
}

// MemoryCache is a mutex-guarded in-process Cache. Entries are kept
// until overwritten or purged; staleness is decided per lookup.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	body     string
	storedAt time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) IsFresh(key string, ttl time.Duration) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	return ok && time.Since(entry.storedAt) < ttl
}

func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	return entry.body, ok
}

func (c *MemoryCache) Put(key, body string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{body: body, storedAt: time.Now()}
}

// Purge drops every entry older than maxAge and reports how many were
// removed.
func (c *MemoryCache) Purge(maxAge time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if time.Since(entry.storedAt) >= maxAge {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored entries, fresh or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
