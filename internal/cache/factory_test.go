package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mx-watch/notifier-alerts/config"
	"github.com/mx-watch/notifier-alerts/internal/cache"
)

func TestNewCacheStore(t *testing.T) {
	tt := []struct {
		name   string
		config *config.CacheConfig

		expectedStore any
		expectedErr   error
	}{
		{
			name:          "in-memory",
			config:        &config.CacheConfig{Engine: config.InMemory},
			expectedStore: &cache.MemoryStore{},
		},
		{
			name:          "freecache",
			config:        &config.CacheConfig{Engine: config.FreeCache, Freecache: &config.FreeCacheConfig{Size: 1024 * 1024}},
			expectedStore: &cache.FreecacheStore{},
		},
		{
			name:        "freecache without config",
			config:      &config.CacheConfig{Engine: config.FreeCache},
			expectedErr: cache.ErrCacheUnknownType,
		},
		{
			name:        "redis without config",
			config:      &config.CacheConfig{Engine: config.Redis},
			expectedErr: cache.ErrCacheUnknownType,
		},
		{
			name:        "unknown engine",
			config:      &config.CacheConfig{Engine: "memcached"},
			expectedErr: cache.ErrCacheUnknownType,
		},
		{
			name:        "missing config",
			expectedErr: cache.ErrCacheUnknownType,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			actual, err := cache.NewCacheStore(context.Background(), tc.config)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			require.IsType(t, tc.expectedStore, actual)
		})
	}
}
