package inventory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// itemCache provides an in-memory LRU cache for single item lookups.
// Entries expire after ttl and the whole cache is purged whenever the inventory changes.
//
// Every purge bumps a generation. A reader records the generation before it
// loads from the store and only fills the cache if no purge happened since,
// so a load that raced a write is never cached.
type itemCache struct {
	lru *expirable.LRU[int, domain.Item]

	mu  sync.Mutex
	gen uint64
}

// newItemCache creates a new item cache with the specified size and TTL.
func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[int, domain.Item](size, nil, ttl),
	}
}

// Get returns a copy of the cached item
func (c *itemCache) Get(id int) (domain.Item, bool) {
	return c.lru.Get(id)
}

// Generation returns the current purge generation
func (c *itemCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// SetIfCurrent stores a copy of the item unless the cache was purged after gen.
// It reports whether the item was stored.
func (c *itemCache) SetIfCurrent(item domain.Item, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return false
	}
	c.lru.Add(item.ID, item)
	return true
}

// Clear removes all entries from the cache and starts a new generation.
func (c *itemCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.lru.Purge()
}
