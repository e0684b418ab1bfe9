package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store over a shared Redis instance. Slot values are
// plain string keys; expiry is handled at the application level (the
// catalog cache carries its own timestamp), so entries are written
// without a TTL.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an already-connected client. Callers that get a nil
// client from config.NewRedisClient should fall back to another store
// rather than passing nil here.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return v, err
}

func (r *Redis) Put(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
