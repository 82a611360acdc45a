package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/intervention-desk/internal/config"
)

// RedisBlob keeps the blob under a single Redis key.
type RedisBlob struct {
	client *redis.Client
	key    string
}

// NewRedisBlob connects to Redis using the provided configuration.
func NewRedisBlob(cfg config.RedisConfig, key string, logger *zap.Logger) *RedisBlob {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("key", key))
	}

	return &RedisBlob{client: client, key: key}
}

// Read implements BlobStore.
func (r *RedisBlob) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return data, true, nil
}

// Write implements BlobStore.
func (r *RedisBlob) Write(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

// Ping implements BlobStore.
func (r *RedisBlob) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close implements BlobStore.
func (r *RedisBlob) Close() error {
	return r.client.Close()
}
