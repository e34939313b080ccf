package cache

import (
	"hash/fnv"
	"sync"
	"time"
)

// Cache is a small in-memory TTL cache safe for concurrent use. Capacity is
// enforced by evicting the least recently used entry; the directory-sized
// working sets here make a linear scan acceptable.
type Cache struct {
	mu       sync.RWMutex
	items    map[string]*item
	maxItems int // 0 = unlimited
}

type item struct {
	v        any
	exp      int64 // unix seconds; 0 = no expiry
	lastUsed int64
}

var (
	defaultCache *Cache
	once         sync.Once
	defaultMax   = 500
)

// Default returns a process-wide cache instance with a background janitor
// sweeping expired entries. Only the shared instance gets a janitor; ad-hoc
// caches drop expired entries on access instead of leaking a goroutine.
func Default() *Cache {
	once.Do(func() {
		defaultCache = New(defaultMax)
		go defaultCache.janitor(60 * time.Second)
	})
	return defaultCache
}

func New(maxItems int) *Cache {
	return &Cache{items: make(map[string]*item), maxItems: maxItems}
}

// Get returns the value and whether it exists and has not expired.
func (c *Cache) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	now := time.Now().Unix()
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if it.exp != 0 && it.exp < now {
		delete(c.items, key)
		return nil, false
	}
	it.lastUsed = now
	return it.v, true
}

// Set stores a value with TTL. ttl <= 0 means no expiry.
func (c *Cache) Set(key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	now := time.Now()
	var exp int64
	if ttl > 0 {
		exp = now.Add(ttl).Unix()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = &item{v: v, exp: exp, lastUsed: now.Unix()}
	if c.maxItems > 0 && len(c.items) > c.maxItems {
		c.evictLRUNoLock(key)
	}
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// evictLRUNoLock removes the least recently used entry other than keep;
// caller must hold c.mu.
func (c *Cache) evictLRUNoLock(keep string) {
	var victim string
	var oldest int64
	for k, it := range c.items {
		if k == keep {
			continue
		}
		if victim == "" || it.lastUsed < oldest {
			victim = k
			oldest = it.lastUsed
		}
	}
	if victim != "" {
		delete(c.items, victim)
	}
}

// janitor periodically removes expired items.
func (c *Cache) janitor(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for range t.C {
		now := time.Now().Unix()
		c.mu.Lock()
		for k, it := range c.items {
			if it.exp != 0 && it.exp < now {
				delete(c.items, k)
			}
		}
		c.mu.Unlock()
	}
}

// KeyFromStrings creates a compact stable key from parts.
func KeyFromStrings(parts ...string) string {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(p))
	}
	return string(h.Sum(nil))
}
