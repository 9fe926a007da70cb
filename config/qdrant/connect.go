package qdrant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"content-srv/config"
	"content-srv/pkg/qdrant"
)

var (
	instance qdrant.IQdrant
	mu       sync.RWMutex
)

// Connect opens the shared Qdrant client. A failed attempt can be retried.
func Connect(ctx context.Context, cfg config.QdrantConfig) (qdrant.IQdrant, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := qdrant.NewQdrant(ctx, qdrant.QdrantConfig{
		Host:    cfg.Host,
		Port:    cfg.Port,
		APIKey:  cfg.APIKey,
		UseTLS:  cfg.UseTLS,
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Qdrant client: %w", err)
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
