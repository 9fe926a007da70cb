package repository

import (
	"context"

	"content-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]model.Post, error)
	Count(ctx context.Context, opts FilterOptions) (int64, error)
	// FindByIDs returns the posts in no particular order.
	FindByIDs(ctx context.Context, opts FindByIDsOptions) ([]model.Post, error)
	Detail(ctx context.Context, opts DetailOptions) (model.Post, error)
	Create(ctx context.Context, opts CreateOptions) error
	Update(ctx context.Context, opts UpdateOptions) error
	AddCategories(ctx context.Context, postID string, categoryIDs []string) error
	RemoveCategories(ctx context.Context, postID string, categoryIDs []string) error
	SoftDelete(ctx context.Context, ids []string) error
	HardDelete(ctx context.Context, ids []string) error
	Restore(ctx context.Context, ids []string) error
}
