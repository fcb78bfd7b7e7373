package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"github.com/mx-watch/notifier-alerts/config"
	"github.com/mx-watch/notifier-alerts/internal/cache"
	testutils "github.com/mx-watch/notifier-alerts/internal/test_utils"
)

func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, addr, err := testutils.RunRedis(pool, "6390", "redis-dedup")
	require.NoError(t, err)
	defer func() {
		_ = pool.Purge(resource)
	}()

	ctx := context.Background()

	var store cache.Store
	err = testutils.Retry(func() error {
		var storeErr error
		store, storeErr = cache.NewCacheStore(ctx, &config.CacheConfig{
			Engine: config.Redis,
			Redis:  &config.RedisConfig{Addr: addr, DB: 1},
		})
		return storeErr
	})
	require.NoError(t, err)

	// when a marker is set then it can be read back
	err = store.Set("alert_aa_ChangeOwnerAddress", []byte{1}, time.Second)
	require.NoError(t, err)

	value, err := store.Get("alert_aa_ChangeOwnerAddress")
	require.NoError(t, err)
	require.Equal(t, []byte{1}, value)

	// when the ttl expires then the marker is gone
	time.Sleep(1500 * time.Millisecond)

	_, err = store.Get("alert_aa_ChangeOwnerAddress")
	require.ErrorIs(t, err, cache.ErrCacheNotFound)

	// when a marker is deleted then it is gone
	err = store.Set("alert_bb_ChangeOwnerAddress", []byte{1}, time.Minute)
	require.NoError(t, err)

	err = store.Del("alert_bb_ChangeOwnerAddress")
	require.NoError(t, err)

	_, err = store.Get("alert_bb_ChangeOwnerAddress")
	require.ErrorIs(t, err, cache.ErrCacheNotFound)
}
