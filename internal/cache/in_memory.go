package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const defaultCleanupInterval = 10 * time.Minute

// MemoryStore keeps values in process memory. Expired items are purged every
// cleanup interval.
type MemoryStore struct {
	data *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: gocache.New(gocache.NoExpiration, defaultCleanupInterval),
	}
}

// Get retrieves a value by key. It returns an error if the key does not exist.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	value, found := s.data.Get(key)
	if !found {
		return nil, ErrCacheNotFound
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheFailedToGet
	}

	return bytes, nil
}

// Set stores a key-value pair. A ttl of zero keeps the value until deleted.
func (s *MemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}

	s.data.Set(key, value, ttl)
	return nil
}

// Del removes keys from the store. Missing keys are ignored.
func (s *MemoryStore) Del(keys ...string) error {
	for _, key := range keys {
		s.data.Delete(key)
	}
	return nil
}
