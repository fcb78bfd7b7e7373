package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/mx-watch/notifier-alerts/config"
)

var ErrCacheUnknownType = errors.New("unknown cache type")

// NewCacheStore creates a new Store based on the provided configuration.
func NewCacheStore(ctx context.Context, cacheConfig *config.CacheConfig) (Store, error) {
	if cacheConfig == nil {
		return nil, errors.Join(ErrCacheUnknownType, errors.New("cache config is missing"))
	}

	switch cacheConfig.Engine {
	case config.InMemory:
		return NewMemoryStore(), nil
	case config.FreeCache:
		if cacheConfig.Freecache == nil {
			return nil, errors.Join(ErrCacheUnknownType, errors.New("freecache config is missing"))
		}
		return NewFreecacheStore(cacheConfig.Freecache.Size), nil
	case config.Redis:
		if cacheConfig.Redis == nil {
			return nil, errors.Join(ErrCacheUnknownType, errors.New("redis config is missing"))
		}

		c := redis.NewClient(&redis.Options{
			Addr:     cacheConfig.Redis.Addr,
			Password: cacheConfig.Redis.Password,
			DB:       cacheConfig.Redis.DB,
		})

		_, err := c.Ping(ctx).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to establish connection to redis at %s: %v", cacheConfig.Redis.Addr, err)
		}

		return NewRedisStore(ctx, c), nil
	default:
		return nil, errors.Join(ErrCacheUnknownType, fmt.Errorf("engine: %s", cacheConfig.Engine))
	}
}
