package lru

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// New creates a cache holding at most size entries.
func New(size int) (*Cache, error) {
	return NewWithOption(Option{Size: size})
}

// NewWithOption creates a cache whose keys all carry opt.Prefix. Each call
// builds its own ARCCache; no underlying cache is shared between Caches.
func NewWithOption(opt Option) (*Cache, error) {
	size := opt.Size
	if size <= 0 {
		size = 1
	}
	arc, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	return &Cache{prefix: opt.Prefix, arc: arc}, nil
}

func (c *Cache) prefixKey(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + key
}

func (c *Cache) unprefixKey(key string) string {
	if c.prefix == "" {
		return key
	}
	return strings.TrimPrefix(key, c.prefix)
}

// Get returns the value stored under key, if present.
func (c *Cache) Get(key string) (interface{}, bool) {
	return c.arc.Get(c.prefixKey(key))
}

// Set stores val under key, evicting an entry chosen by the ARC policy if
// the cache is at capacity.
func (c *Cache) Set(key string, val interface{}) {
	c.arc.Add(c.prefixKey(key), val)
}

// GetSet returns the current value under key, computing and storing it
// first if absent. Used by schema.Registry to memoize a freshly compiled
// fuzzy-match table the first time a record type is looked up.
func (c *Cache) GetSet(key string, compute func() (interface{}, error)) (interface{}, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	c.Set(key, v)
	return v, nil
}

// Del removes key from the cache.
func (c *Cache) Del(key string) {
	c.arc.Remove(c.prefixKey(key))
}

// Has reports whether key is present without affecting its recency.
func (c *Cache) Has(key string) bool {
	return c.arc.Contains(c.prefixKey(key))
}

// Len returns the number of entries the cache currently holds.
func (c *Cache) Len() int {
	return c.arc.Len()
}

// Keys returns every key under this cache's prefix, with the prefix
// stripped.
func (c *Cache) Keys() []string {
	var keys []string
	for _, k := range c.arc.Keys() {
		ks, ok := k.(string)
		if !ok || !strings.HasPrefix(ks, c.prefix) {
			continue
		}
		keys = append(keys, c.unprefixKey(ks))
	}
	return keys
}

// Clear removes every key under this cache's prefix.
func (c *Cache) Clear() {
	for _, k := range c.Keys() {
		c.Del(k)
	}
}
