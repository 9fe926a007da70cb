package comment

import (
	"context"

	"content-srv/internal/model"
	"content-srv/pkg/tree"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// FindTrees returns the reply forest, oldest first at every level.
	FindTrees(ctx context.Context, input TreeInput) ([]*tree.Node[model.Comment], error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (model.Comment, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Comment, error)
	// Delete removes the comments together with their replies.
	Delete(ctx context.Context, ids []string) ([]model.Comment, error)
}
