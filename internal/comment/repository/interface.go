package repository

import (
	"context"

	"content-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// List returns comments ordered by created_at.
	List(ctx context.Context, opts ListOptions) ([]model.Comment, error)
	Detail(ctx context.Context, id string) (model.Comment, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Comment, error)
	Create(ctx context.Context, opts CreateOptions) (model.Comment, error)
	// DeleteSubtrees removes every comment whose path starts with one of mpaths.
	DeleteSubtrees(ctx context.Context, mpaths []string) error
}

type ListOptions struct {
	PostID string
}

type CreateOptions struct {
	ID       string
	Body     string
	PostID   string
	ParentID *string
	MPath    string
	AuthorID string
}
