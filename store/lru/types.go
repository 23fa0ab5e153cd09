// Package lru is an ARC-backed cache adapted from the host application's
// general-purpose store package, trimmed to what schema.Registry needs: a
// bounded cache of compiled field-lookup tables keyed by record type name.
package lru

import (
	lru "github.com/hashicorp/golang-lru"
)

// Cache is a fixed-capacity ARC cache. The zero value is not usable;
// construct with New.
type Cache struct {
	prefix string
	arc    *lru.ARCCache
}

// Option configures a Cache at construction time.
type Option struct {
	// Size is the maximum number of entries the cache retains.
	Size int
	// Prefix is prepended to every key stored in the cache and stripped
	// again by Keys.
	Prefix string
}
