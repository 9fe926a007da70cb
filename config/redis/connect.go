package redis

import (
	"context"
	"fmt"
	"sync"

	"content-srv/config"
	"content-srv/pkg/redis"
)

var (
	instance redis.IRedis
	mu       sync.RWMutex
)

// Connect opens the shared Redis client. A failed attempt can be retried.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := redis.NewRedis(ctx, redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	instance = client
	return instance, nil
}

// Disconnect closes the shared client.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	if err := instance.Close(); err != nil {
		return err
	}
	instance = nil
	return nil
}
