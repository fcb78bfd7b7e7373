package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mx-watch/notifier-alerts/internal/cache"
)

func TestFreecacheStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping ttl expiry test in short mode")
	}

	size := 1024 * 1024
	store := cache.NewFreecacheStore(size)

	key := "alert_6b10_ChangeOwnerAddress"
	value := []byte("1")
	ttl := 1 * time.Second

	// Test Set
	err := store.Set(key, value, ttl)
	require.NoError(t, err, "expected no error on Set")

	// Test Get
	retrievedValue, err := store.Get(key)
	require.NoError(t, err, "expected no error on Get")
	require.Equal(t, value, retrievedValue, "expected retrieved value to match set value")

	// Test Get after TTL expiry
	time.Sleep(ttl + 1*time.Second)
	retrievedValue, err = store.Get(key)
	require.ErrorIs(t, err, cache.ErrCacheNotFound, "expected error on Get after TTL expiry")
	require.Nil(t, retrievedValue, "expected nil value on Get after TTL expiry")

	// Test Delete
	err = store.Set(key, value, 0)
	require.NoError(t, err, "expected no error on Set before Delete")

	err = store.Del(key)
	require.NoError(t, err, "expected no error on Delete")

	retrievedValue, err = store.Get(key)
	require.ErrorIs(t, err, cache.ErrCacheNotFound, "expected error on Get after Delete")
	require.Nil(t, retrievedValue, "expected nil value on Get after Delete")

	// Test Delete non-existent key
	err = store.Del("nonexistent")
	require.NoError(t, err, "expected no error on Delete for non-existent key")
}
