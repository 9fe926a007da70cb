package usecase

import (
	"context"

	"content-srv/internal/category"
	"content-srv/internal/category/repository"
	"content-srv/internal/model"
	"content-srv/pkg/paginator"
	"content-srv/pkg/tree"
)

// FindTrees - Build the category forest for the trash mode.
func (uc *implUseCase) FindTrees(ctx context.Context, input category.TreeInput) ([]*tree.Node[model.Category], error) {
	rows, err := uc.treeRows(ctx, input.Trashed)
	if err != nil {
		uc.l.Errorf(ctx, "category.usecase.FindTrees: repo.List failed: %v", err)
		return nil, err
	}

	return buildForest(rows), nil
}

// List - Page through the flattened forest.
func (uc *implUseCase) List(ctx context.Context, input category.ListInput) (category.ListOutput, error) {
	if err := input.Paginate.Validate(); err != nil {
		return category.ListOutput{}, err
	}

	forest, err := uc.FindTrees(ctx, category.TreeInput{Trashed: input.Trashed})
	if err != nil {
		return category.ListOutput{}, err
	}

	return paginator.ManualPaginate(input.Paginate, tree.Flatten(forest))
}

// treeRows - Load the rows of the forest. Trashed-only trees keep the ancestors of
// trashed rows so every trashed row stays at its place in the hierarchy.
func (uc *implUseCase) treeRows(ctx context.Context, mode model.TrashMode) ([]model.Category, error) {
	if mode != model.TrashOnly {
		return uc.repo.List(ctx, repository.ListOptions{Trashed: mode})
	}

	rows, err := uc.repo.List(ctx, repository.ListOptions{Trashed: model.TrashAll})
	if err != nil {
		return nil, err
	}

	keep := make(map[string]struct{})
	for _, c := range rows {
		if !c.IsTrashed() {
			continue
		}
		keep[c.ID] = struct{}{}
		for _, id := range model.AncestorIDs(c.MPath) {
			keep[id] = struct{}{}
		}
	}

	out := make([]model.Category, 0, len(keep))
	for _, c := range rows {
		if _, ok := keep[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func buildForest(rows []model.Category) []*tree.Node[model.Category] {
	return tree.Build(rows,
		func(c model.Category) string { return c.ID },
		func(c model.Category) (string, bool) {
			if c.ParentID == nil {
				return "", false
			}
			return *c.ParentID, true
		},
	)
}
