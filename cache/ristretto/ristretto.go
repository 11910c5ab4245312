package ristretto

import (
	"time"

	"github.com/caasmo/imprint/cache"
	"github.com/dgraph-io/ristretto/v2"
)

type Cache[K interface {
	ristretto.Key
	comparable
}, V any] struct {
	cache *ristretto.Cache[K, V]
}

func (rc *Cache[K, V]) Get(key K) (V, bool) {
	return rc.cache.Get(key)
}

func (rc *Cache[K, V]) Set(key K, value V, cost int64) bool {
	return rc.cache.Set(key, value, cost)
}

func (rc *Cache[K, V]) SetWithTTL(key K, value V, cost int64, ttl time.Duration) bool {
	return rc.cache.SetWithTTL(key, value, cost, ttl)
}

// New creates a ristretto-backed cache bounded by maxCost. Cost is whatever
// unit the caller passes to Set; the asset handler uses byte length.
func New[K interface {
	ristretto.Key
	comparable
}, V any](maxCost int64) (cache.Cache[K, V], error) {
	c, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters: 1e6,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[K, V]{cache: c}, nil
}
