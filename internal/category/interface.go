package category

import (
	"context"

	"content-srv/internal/model"
	"content-srv/pkg/tree"
)

//go:generate mockery --name UseCase
type UseCase interface {
	FindTrees(ctx context.Context, input TreeInput) ([]*tree.Node[model.Category], error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, input DetailInput) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (DetailOutput, error)
	Delete(ctx context.Context, input DeleteInput) ([]model.Category, error)
	Restore(ctx context.Context, ids []string) ([]model.Category, error)
}
