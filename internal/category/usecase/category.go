package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"content-srv/internal/category"
	"content-srv/internal/category/repository"
	"content-srv/internal/model"
	"content-srv/pkg/util"
)

// Detail - Get a category with its parent.
func (uc *implUseCase) Detail(ctx context.Context, input category.DetailInput) (category.DetailOutput, error) {
	c, err := uc.detail(ctx, input.ID, input.WithTrashed)
	if err != nil {
		return category.DetailOutput{}, err
	}

	out := category.DetailOutput{Category: c}
	if c.ParentID != nil {
		parent, err := uc.detail(ctx, *c.ParentID, true)
		if err != nil && !errors.Is(err, category.ErrCategoryNotFound) {
			return category.DetailOutput{}, err
		}
		if err == nil {
			out.Parent = &parent
		}
	}

	return out, nil
}

// Create - Create a category under an optional parent.
func (uc *implUseCase) Create(ctx context.Context, input category.CreateInput) (category.DetailOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return category.DetailOutput{}, category.ErrNameRequired
	}

	id := uuid.NewString()
	opts := repository.CreateOptions{
		ID:          id,
		Name:        name,
		CustomOrder: input.CustomOrder,
		MPath:       model.RootMPath(id),
	}

	var parent *model.Category
	if input.ParentID != nil {
		p, err := uc.parent(ctx, *input.ParentID)
		if err != nil {
			return category.DetailOutput{}, err
		}
		parent = &p
		opts.ParentID = &p.ID
		opts.MPath = p.ChildMPath(id)
	}

	c, err := uc.repo.Create(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "category.usecase.Create: repo.Create failed: %v", err)
		return category.DetailOutput{}, err
	}

	return category.DetailOutput{Category: c, Parent: parent}, nil
}

// Update - Update a category. Moving it rewrites the paths of its whole subtree.
func (uc *implUseCase) Update(ctx context.Context, input category.UpdateInput) (category.DetailOutput, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return category.DetailOutput{}, category.ErrNameRequired
		}
		input.Name = &name
	}

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := uc.detail(ctx, input.ID, false)
		if err != nil {
			return err
		}

		newMPath := c.MPath
		if input.ParentSet {
			newMPath = model.RootMPath(c.ID)
			if input.ParentID != nil {
				parent, err := uc.parent(ctx, *input.ParentID)
				if err != nil {
					return err
				}
				if parent.ID == c.ID || c.IsAncestorOf(parent) {
					return category.ErrInvalidParent
				}
				newMPath = parent.ChildMPath(c.ID)
			}
		}

		if err := uc.repo.Update(ctx, repository.UpdateOptions{
			ID:          c.ID,
			Name:        input.Name,
			CustomOrder: input.CustomOrder,
			ParentSet:   input.ParentSet,
			ParentID:    input.ParentID,
		}); err != nil {
			uc.l.Errorf(ctx, "category.usecase.Update: repo.Update failed: %v", err)
			return mapRepoError(err)
		}

		if err := uc.repo.MovePaths(ctx, repository.MovePathsOptions{
			OldPrefix: c.MPath,
			NewPrefix: newMPath,
		}); err != nil {
			uc.l.Errorf(ctx, "category.usecase.Update: repo.MovePaths failed: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return category.DetailOutput{}, err
	}

	return uc.Detail(ctx, category.DetailInput{ID: input.ID})
}

// Delete - Delete categories, ignoring unknown ids. Children of a deleted category move one level up
// before it is removed. With Trash, rows not trashed yet are soft-deleted and
// trashed rows are removed; without it every row is removed.
func (uc *implUseCase) Delete(ctx context.Context, input category.DeleteInput) ([]model.Category, error) {
	ids := util.Unique(input.IDs)
	if len(ids) == 0 {
		return nil, category.ErrIDsRequired
	}

	var deleted []model.Category
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		deleted = make([]model.Category, 0, len(ids))
		for _, id := range ids {
			// Reloaded per id: promoting an earlier item may have moved this one.
			item, err := uc.detail(ctx, id, true)
			if errors.Is(err, category.ErrCategoryNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if err := uc.promoteChildren(ctx, item); err != nil {
				return err
			}
			deleted = append(deleted, item)
		}

		var soft, hard []string
		for _, item := range deleted {
			if input.Trash && !item.IsTrashed() {
				soft = append(soft, item.ID)
				continue
			}
			hard = append(hard, item.ID)
		}

		if err := uc.repo.SoftDelete(ctx, soft); err != nil {
			uc.l.Errorf(ctx, "category.usecase.Delete: repo.SoftDelete failed: %v", err)
			return err
		}
		if err := uc.repo.HardDelete(ctx, hard); err != nil {
			uc.l.Errorf(ctx, "category.usecase.Delete: repo.HardDelete failed: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if input.Trash {
		now := time.Now()
		for i := range deleted {
			if deleted[i].DeletedAt == nil {
				deleted[i].DeletedAt = &now
			}
		}
	}
	return deleted, nil
}

// Restore - Clear the trashed mark of categories. Unknown ids are ignored.
func (uc *implUseCase) Restore(ctx context.Context, ids []string) ([]model.Category, error) {
	ids = util.Unique(ids)
	if len(ids) == 0 {
		return nil, category.ErrIDsRequired
	}

	var restored []model.Category
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		restored = make([]model.Category, 0, len(ids))
		found := make([]string, 0, len(ids))
		for _, id := range ids {
			item, err := uc.detail(ctx, id, true)
			if errors.Is(err, category.ErrCategoryNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			item.DeletedAt = nil
			restored = append(restored, item)
			found = append(found, id)
		}

		if err := uc.repo.Restore(ctx, found); err != nil {
			uc.l.Errorf(ctx, "category.usecase.Restore: repo.Restore failed: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return restored, nil
}

// promoteChildren - Move the subtree under item one level up.
func (uc *implUseCase) promoteChildren(ctx context.Context, item model.Category) error {
	if err := uc.repo.ReparentChildren(ctx, repository.ReparentChildrenOptions{
		ID:       item.ID,
		ParentID: item.ParentID,
	}); err != nil {
		uc.l.Errorf(ctx, "category.usecase.promoteChildren: repo.ReparentChildren failed: %v", err)
		return err
	}

	if err := uc.repo.MovePaths(ctx, repository.MovePathsOptions{
		OldPrefix: item.MPath,
		NewPrefix: strings.TrimSuffix(item.MPath, model.RootMPath(item.ID)),
		ExcludeID: item.ID,
	}); err != nil {
		uc.l.Errorf(ctx, "category.usecase.promoteChildren: repo.MovePaths failed: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) detail(ctx context.Context, id string, withTrashed bool) (model.Category, error) {
	c, err := uc.repo.Detail(ctx, repository.DetailOptions{ID: id, WithTrashed: withTrashed})
	if err != nil {
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			uc.l.Errorf(ctx, "category.usecase.detail: repo.Detail failed: %v", err)
		}
		return model.Category{}, mapRepoError(err)
	}
	return c, nil
}

// parent - Load a live category to attach children to.
func (uc *implUseCase) parent(ctx context.Context, id string) (model.Category, error) {
	p, err := uc.detail(ctx, id, false)
	if errors.Is(err, category.ErrCategoryNotFound) {
		return model.Category{}, category.ErrParentNotFound
	}
	return p, err
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return category.ErrCategoryNotFound
	}
	return err
}
