package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// CacheRedisClient struct holds the Redis client and context
type CacheRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewCacheRedisClient wraps an initialized go-redis client.
func NewCacheRedisClient(ctx context.Context, client *redis.Client) *CacheRedisClient {
	return &CacheRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set stores a key-value pair with the given TTL. Redis owns expiry, so a
// read past the TTL is simply a miss.
func (r *CacheRedisClient) Set(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key, mapping redis.Nil to ErrCacheMiss.
func (r *CacheRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Del removes a key.
func (r *CacheRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Ping checks connectivity.
func (r *CacheRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}

// GetContext returns the client's context.
func (r *CacheRedisClient) GetContext() context.Context {
	return r.ctx
}
