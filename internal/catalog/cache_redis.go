package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"pokedex/pkg/platform/sentinel"
)

const redisKeyPrefix = "pokedex:catalog:"

// RedisCache is a Cache shared between pokedex instances. Entries carry the
// TTL so Redis expires them without a sweeper.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps a connected client. The client lifecycle is managed by
// the caller.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, redisKeyPrefix+key, value, ttl).Err()
}
