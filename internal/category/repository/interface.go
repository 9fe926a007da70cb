package repository

import (
	"context"

	"content-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// List returns categories ordered by custom_order then created_at.
	List(ctx context.Context, opts ListOptions) ([]model.Category, error)
	Detail(ctx context.Context, opts DetailOptions) (model.Category, error)
	Create(ctx context.Context, opts CreateOptions) (model.Category, error)
	Update(ctx context.Context, opts UpdateOptions) error
	// MovePaths replaces the OldPrefix of every matching mpath with NewPrefix.
	MovePaths(ctx context.Context, opts MovePathsOptions) error
	// ReparentChildren points the direct children of ID at ParentID.
	ReparentChildren(ctx context.Context, opts ReparentChildrenOptions) error
	SoftDelete(ctx context.Context, ids []string) error
	HardDelete(ctx context.Context, ids []string) error
	Restore(ctx context.Context, ids []string) error
}
