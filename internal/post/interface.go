package post

import (
	"context"

	"content-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, input DetailInput) (model.Post, error)
	Create(ctx context.Context, input CreateInput) (model.Post, error)
	Update(ctx context.Context, input UpdateInput) (model.Post, error)
	Delete(ctx context.Context, input DeleteInput) ([]model.Post, error)
	Restore(ctx context.Context, ids []string) ([]model.Post, error)
	// SyncIndex brings the search index in line with the stored post.
	SyncIndex(ctx context.Context, input SyncIndexInput) error
}

// Indexer keeps the search index in step with post writes.
//
//go:generate mockery --name Indexer
type Indexer interface {
	Index(ctx context.Context, p model.Post) error
	Remove(ctx context.Context, ids []string) error
}
