package repository

import (
	"context"
	"time"
)

//go:generate mockery --name PointRepository
type PointRepository interface {
	EnsureCollection(ctx context.Context, opts EnsureCollectionOptions) error
	Upsert(ctx context.Context, opts UpsertOptions) error
	Delete(ctx context.Context, ids []string) error
	Search(ctx context.Context, opts SearchOptions) ([]ScoredPoint, error)
}

// EmbeddingCache stores query vectors by text.
//
//go:generate mockery --name EmbeddingCache
type EmbeddingCache interface {
	// Get returns ok false on a miss.
	Get(ctx context.Context, text string) (vector []float32, ok bool, err error)
	Save(ctx context.Context, text string, vector []float32, ttl time.Duration) error
}
