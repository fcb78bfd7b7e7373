package cache

import (
	"errors"
	"time"

	"github.com/coocood/freecache"
)

// FreecacheStore is an implementation of Store using freecache.
type FreecacheStore struct {
	cache *freecache.Cache
}

// NewFreecacheStore initializes a FreecacheStore with the given size in bytes.
func NewFreecacheStore(size int) *FreecacheStore {
	return &FreecacheStore{
		cache: freecache.NewCache(size),
	}
}

// Get retrieves a value by key.
func (f *FreecacheStore) Get(key string) ([]byte, error) {
	value, err := f.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrCacheNotFound
		}
		return nil, errors.Join(ErrCacheFailedToGet, err)
	}
	return value, nil
}

// Set stores a value with a TTL. Freecache expires with a granularity of one
// second, shorter positive ttls are rounded up.
func (f *FreecacheStore) Set(key string, value []byte, ttl time.Duration) error {
	expireSeconds := int(ttl.Seconds())
	if ttl > 0 && expireSeconds == 0 {
		expireSeconds = 1
	}

	err := f.cache.Set([]byte(key), value, expireSeconds)
	if err != nil {
		return errors.Join(ErrCacheFailedToSet, err)
	}
	return nil
}

// Del removes values by key. Missing keys are ignored.
func (f *FreecacheStore) Del(keys ...string) error {
	for _, key := range keys {
		f.cache.Del([]byte(key))
	}
	return nil
}
