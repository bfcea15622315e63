package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemoryCapacity bounds the L1 tier when no capacity is configured.
const DefaultMemoryCapacity = 1000

// MemoryCache is the in-process L1 tier: a bounded LRU where each entry
// additionally carries its own expiry. Reads promote recency; inserts
// beyond capacity evict the least-recently-used entry. The underlying LRU
// serializes access, so concurrent get/put cannot corrupt recency order.
type MemoryCache struct {
	entries *lru.Cache[string, *Entry]
}

// NewMemoryCache creates an L1 cache bounded to capacity entries.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	entries, err := lru.NewWithEvict(capacity, func(string, *Entry) {
		CacheEvictions.Inc()
	})
	if err != nil {
		// lru.NewWithEvict only fails for non-positive capacity.
		panic(err)
	}
	return &MemoryCache{entries: entries}
}

// Get returns the entry for key, or (nil, false) on miss. Expired entries
// are removed and reported as misses even if never explicitly evicted.
func (m *MemoryCache) Get(key string) (*Entry, bool) {
	entry, ok := m.entries.Get(key)
	if !ok {
		return nil, false
	}
	if entry.IsExpired() {
		m.entries.Remove(key)
		return nil, false
	}
	entry.Tier = TierMemory
	return entry, true
}

// Set stores an entry, evicting the least-recently-used entry if the
// cache is at capacity. Already-expired entries are not stored.
func (m *MemoryCache) Set(key string, entry *Entry) {
	if entry == nil || entry.IsExpired() {
		return
	}
	m.entries.Add(key, entry)
}

// Delete removes the entry for key if present.
func (m *MemoryCache) Delete(key string) {
	m.entries.Remove(key)
}

// Len returns the number of entries currently held, including entries
// whose TTL has lapsed but which have not been touched since.
func (m *MemoryCache) Len() int {
	return m.entries.Len()
}

// Purge drops all entries.
func (m *MemoryCache) Purge() {
	m.entries.Purge()
}
