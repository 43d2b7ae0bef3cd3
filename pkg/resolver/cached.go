package resolver

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of distinct labels Cached remembers.
const DefaultCacheSize = 1024

type cached struct {
	key   string
	known bool
}

// Cached memoizes a TypeResolver per raw label. Misses are still reported to
// the observer on every call, cached or not.
type Cached struct {
	r     *TypeResolver
	cache *lru.Cache[string, cached]
}

// NewCached wraps r with an LRU of size entries; size <= 0 uses
// DefaultCacheSize.
func NewCached(r *TypeResolver, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[string, cached](size)
	if err != nil {
		return nil, err
	}
	return &Cached{r: r, cache: c}, nil
}

// Resolve behaves like TypeResolver.Resolve.
func (c *Cached) Resolve(raw string) string {
	key, _ := c.Lookup(raw)
	return key
}

// Lookup behaves like TypeResolver.Lookup.
func (c *Cached) Lookup(raw string) (string, bool) {
	if raw == "" {
		return raw, false
	}
	v, ok := c.cache.Get(raw)
	if !ok {
		v.key, v.known = c.r.match(raw)
		c.cache.Add(raw, v)
	}
	if !v.known {
		c.r.notify(raw, v.key)
	}
	return v.key, v.known
}

// Len reports how many labels are cached.
func (c *Cached) Len() int { return c.cache.Len() }
