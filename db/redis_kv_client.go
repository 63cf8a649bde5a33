package db

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// RedisKVClient struct holds the Redis client and context
type RedisKVClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisKVClient initializes a KV client over an existing Redis connection.
func NewRedisKVClient(ctx context.Context, client *redis.Client) *RedisKVClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatal().Err(err).Msg("Could not connect to Redis")
	}
	log.Info().Msg("Connected to Redis")

	return &RedisKVClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *RedisKVClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *RedisKVClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Del removes a key from Redis
func (r *RedisKVClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Keys lists keys matching the given pattern
func (r *RedisKVClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *RedisKVClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *RedisKVClient) GetContext() context.Context {
	return r.ctx
}
