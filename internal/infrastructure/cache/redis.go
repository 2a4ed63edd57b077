package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xXxDanya2007xXx/speech-coach/pkg/config"
)

// RedisStore implements Store on top of go-redis
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Get retrieves a value by key
func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := rs.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores a key-value pair with expiration
func (rs *RedisStore) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return rs.client.Set(ctx, key, value, expiration).Err()
}

// Delete removes a key
func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	return rs.client.Del(ctx, key).Err()
}

// Close shuts down the underlying connection pool
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

// Ping verifies the connection, used by the health endpoint
func (rs *RedisStore) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}
