package cache

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/coocood/freecache"

	"sybil-dashboard/metrics"
)

// ViewCache keeps rendered JSON views in a fixed-size in-process cache.
// Keys must include the snapshot id so a dataset swap never serves stale views.
type ViewCache struct {
	local *freecache.Cache
	ttl   time.Duration
}

// NewViewCache allocates a cache of sizeMB megabytes
func NewViewCache(sizeMB int, ttl time.Duration) *ViewCache {
	return &ViewCache{
		local: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   ttl,
	}
}

// Get returns the cached JSON for key
func (c *ViewCache) Get(key string) ([]byte, bool) {
	data, err := c.local.Get([]byte(key))
	if err != nil {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return data, true
}

// Put encodes value, stores it under key and returns the encoded JSON
func (c *ViewCache) Put(key string, value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	// values larger than the cache segment limit are served uncached
	if err := c.local.Set([]byte(key), data, int(c.ttl.Seconds())); err != nil && !errors.Is(err, freecache.ErrLargeEntry) {
		return nil, err
	}
	return data, nil
}

// Clear drops every cached view
func (c *ViewCache) Clear() {
	c.local.Clear()
}
