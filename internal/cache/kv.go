// Package cache stores computed reports so repeated dashboard reads do not
// rescan the whole record collection.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rotisserie/eris"
)

// ErrMiss is returned by a KVStore when the key does not exist.
var ErrMiss = errors.New("cache miss")

// KVStore is the key-value backend of the cache. Tests replace redis with a map.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisStore implements KVStore on go-redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient connects to addr. The connection is checked with PING.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, eris.Wrapf(err, "ping redis at %s", addr)
	}
	return client, nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrMiss
		}
		return "", eris.Wrapf(err, "redis get %s", key)
	}
	return val, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return eris.Wrapf(err, "redis set %s", key)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return eris.Wrap(err, "redis del")
	}
	return nil
}
