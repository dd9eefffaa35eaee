package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is an in-memory cache implementation. Entries live for the
// lifetime of the instance unless they expire or Clear is called.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	value     []byte
	storedAt  time.Time
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*cacheEntry),
	}
}

// Get retrieves a payload from the cache. Returns (nil, false) on miss or expiry.
func (c *MemoryCache) Get(_ context.Context, key RequestKey) ([]byte, bool) {
	k := key.String()

	c.mu.RLock()
	entry, ok := c.entries[k]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	// Check expiry
	if time.Now().After(entry.expiresAt) {
		// Expired - clean up lazily
		c.deleteIfExpired(k)
		return nil, false
	}

	return entry.value, true
}

// deleteIfExpired removes k only if its entry is still expired. A Set that
// refreshed the entry between the read lock and this call keeps its value.
func (c *MemoryCache) deleteIfExpired(k string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[k]
	if ok && time.Now().After(entry.expiresAt) {
		delete(c.entries, k)
	}
}

// Set stores a payload with the given TTL. TTL=0 means immediate expiry (no caching).
func (c *MemoryCache) Set(_ context.Context, key RequestKey, value []byte, ttl time.Duration) error {
	// TTL=0 means don't cache
	if ttl <= 0 {
		return nil
	}
	if err := key.Validate(); err != nil {
		return err
	}

	now := time.Now()
	c.mu.Lock()
	c.entries[key.String()] = &cacheEntry{
		value:     value,
		storedAt:  now,
		expiresAt: now.Add(ttl),
	}
	c.mu.Unlock()

	return nil
}

// Delete removes a payload from the cache. Idempotent - no error on miss.
func (c *MemoryCache) Delete(_ context.Context, key RequestKey) error {
	c.mu.Lock()
	delete(c.entries, key.String())
	c.mu.Unlock()
	return nil
}

// Clear removes every entry unconditionally.
func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// StoredAt reports when the entry for key was written. Returns (zero, false)
// if the key is absent.
func (c *MemoryCache) StoredAt(key RequestKey) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key.String()]
	if !ok {
		return time.Time{}, false
	}
	return entry.storedAt, true
}

// Ensure MemoryCache implements Cache
var _ Cache = (*MemoryCache)(nil)
