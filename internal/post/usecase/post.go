package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	categoryRepo "content-srv/internal/category/repository"
	"content-srv/internal/model"
	"content-srv/internal/post"
	"content-srv/internal/post/repository"
	"content-srv/pkg/util"
)

// Detail - Get a post.
func (uc *implUseCase) Detail(ctx context.Context, input post.DetailInput) (model.Post, error) {
	p, err := uc.repo.Detail(ctx, repository.DetailOptions{ID: input.ID, WithTrashed: input.WithTrashed})
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return model.Post{}, post.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "post.usecase.Detail: repo.Detail failed: %v", err)
		return model.Post{}, err
	}
	return p, nil
}

// Create - Create a post with its categories, then index it.
func (uc *implUseCase) Create(ctx context.Context, input post.CreateInput) (model.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Post{}, post.ErrTitleRequired
	}
	postType := input.Type
	if postType == "" {
		postType = model.PostTypeMarkdown
	}
	if !postType.IsValid() {
		return model.Post{}, post.ErrInvalidType
	}

	categoryIDs := util.Unique(input.CategoryIDs)
	id := uuid.NewString()

	var created model.Post
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.checkCategories(ctx, categoryIDs); err != nil {
			return err
		}

		if err := uc.repo.Create(ctx, repository.CreateOptions{
			ID:          id,
			Title:       title,
			Body:        input.Body,
			Summary:     input.Summary,
			Keywords:    util.Unique(input.Keywords),
			Type:        postType,
			PublishedAt: input.PublishedAt,
			CustomOrder: input.CustomOrder,
			CategoryIDs: categoryIDs,
		}); err != nil {
			uc.l.Errorf(ctx, "post.usecase.Create: repo.Create failed: %v", err)
			return err
		}

		var err error
		created, err = uc.Detail(ctx, post.DetailInput{ID: id})
		return err
	})
	if err != nil {
		return model.Post{}, err
	}

	if err := uc.index(ctx, created); err != nil {
		return model.Post{}, err
	}
	return created, nil
}

// Update - Update a post. Category relations are diffed against the stored ones.
func (uc *implUseCase) Update(ctx context.Context, input post.UpdateInput) (model.Post, error) {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return model.Post{}, post.ErrTitleRequired
		}
		input.Title = &title
	}
	if input.Type != nil && !input.Type.IsValid() {
		return model.Post{}, post.ErrInvalidType
	}

	var updated model.Post
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := uc.Detail(ctx, post.DetailInput{ID: input.ID})
		if err != nil {
			return err
		}

		if input.CategoriesSet {
			if err := uc.syncCategories(ctx, current, util.Unique(input.CategoryIDs)); err != nil {
				return err
			}
		}

		keywords := input.Keywords
		if input.KeywordsSet {
			keywords = util.Unique(keywords)
		}
		if err := uc.repo.Update(ctx, repository.UpdateOptions{
			ID:           input.ID,
			Title:        input.Title,
			Body:         input.Body,
			Summary:      input.Summary,
			Keywords:     keywords,
			KeywordsSet:  input.KeywordsSet,
			Type:         input.Type,
			PublishedSet: input.PublishedSet,
			PublishedAt:  input.PublishedAt,
			CustomOrder:  input.CustomOrder,
		}); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return post.ErrPostNotFound
			}
			uc.l.Errorf(ctx, "post.usecase.Update: repo.Update failed: %v", err)
			return err
		}

		updated, err = uc.Detail(ctx, post.DetailInput{ID: input.ID})
		return err
	})
	if err != nil {
		return model.Post{}, err
	}

	if err := uc.index(ctx, updated); err != nil {
		return model.Post{}, err
	}
	return updated, nil
}

// Delete - Delete posts and drop them from the index. With Trash, live posts are
// soft-deleted and trashed ones removed; without it all are removed. Unknown ids are ignored.
func (uc *implUseCase) Delete(ctx context.Context, input post.DeleteInput) ([]model.Post, error) {
	ids := util.Unique(input.IDs)
	if len(ids) == 0 {
		return nil, post.ErrIDsRequired
	}

	var items []model.Post
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		items, err = uc.repo.FindByIDs(ctx, repository.FindByIDsOptions{IDs: ids, WithTrashed: true})
		if err != nil {
			uc.l.Errorf(ctx, "post.usecase.Delete: repo.FindByIDs failed: %v", err)
			return err
		}
		items = orderByIDs(items, ids)

		var soft, hard []string
		for _, p := range items {
			if input.Trash && !p.IsTrashed() {
				soft = append(soft, p.ID)
				continue
			}
			hard = append(hard, p.ID)
		}

		if err := uc.repo.SoftDelete(ctx, soft); err != nil {
			uc.l.Errorf(ctx, "post.usecase.Delete: repo.SoftDelete failed: %v", err)
			return err
		}
		if err := uc.repo.HardDelete(ctx, hard); err != nil {
			uc.l.Errorf(ctx, "post.usecase.Delete: repo.HardDelete failed: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if input.Trash {
		now := time.Now()
		for i := range items {
			if items[i].DeletedAt == nil {
				items[i].DeletedAt = &now
			}
		}
	}

	if uc.indexer != nil {
		if err := uc.indexer.Remove(ctx, ids); err != nil {
			uc.l.Errorf(ctx, "post.usecase.Delete: indexer.Remove failed: %v", err)
			return nil, fmt.Errorf("%w: %v", post.ErrIndexFailed, err)
		}
	}
	return items, nil
}

// Restore - Clear the trashed mark of posts and index them again.
func (uc *implUseCase) Restore(ctx context.Context, ids []string) ([]model.Post, error) {
	ids = util.Unique(ids)
	if len(ids) == 0 {
		return nil, post.ErrIDsRequired
	}

	var restored []model.Post
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		items, err := uc.repo.FindByIDs(ctx, repository.FindByIDsOptions{IDs: ids, WithTrashed: true})
		if err != nil {
			uc.l.Errorf(ctx, "post.usecase.Restore: repo.FindByIDs failed: %v", err)
			return err
		}

		found := make([]string, 0, len(items))
		for _, p := range items {
			found = append(found, p.ID)
		}
		if err := uc.repo.Restore(ctx, found); err != nil {
			uc.l.Errorf(ctx, "post.usecase.Restore: repo.Restore failed: %v", err)
			return err
		}

		restored, err = uc.repo.FindByIDs(ctx, repository.FindByIDsOptions{IDs: found})
		if err != nil {
			uc.l.Errorf(ctx, "post.usecase.Restore: repo.FindByIDs failed: %v", err)
			return err
		}
		restored = orderByIDs(restored, ids)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, p := range restored {
		if err := uc.index(ctx, p); err != nil {
			return nil, err
		}
	}
	return restored, nil
}

// SyncIndex - Index the stored post, or drop it when it is gone or trashed.
func (uc *implUseCase) SyncIndex(ctx context.Context, input post.SyncIndexInput) error {
	if uc.indexer == nil {
		return nil
	}

	if !input.Deleted {
		p, err := uc.Detail(ctx, post.DetailInput{ID: input.ID, WithTrashed: true})
		if err != nil && !errors.Is(err, post.ErrPostNotFound) {
			return err
		}
		if err == nil && !p.IsTrashed() {
			return uc.index(ctx, p)
		}
	}

	if err := uc.indexer.Remove(ctx, []string{input.ID}); err != nil {
		uc.l.Errorf(ctx, "post.usecase.SyncIndex: indexer.Remove failed: %v", err)
		return fmt.Errorf("%w: %v", post.ErrIndexFailed, err)
	}
	return nil
}

func (uc *implUseCase) index(ctx context.Context, p model.Post) error {
	if uc.indexer == nil {
		return nil
	}
	if err := uc.indexer.Index(ctx, p); err != nil {
		uc.l.Errorf(ctx, "post.usecase.index: indexer.Index failed for post %s: %v", p.ID, err)
		return fmt.Errorf("%w: %v", post.ErrIndexFailed, err)
	}
	return nil
}

// checkCategories - Every id must be a live category.
func (uc *implUseCase) checkCategories(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	cats, err := uc.categoryRepo.List(ctx, categoryRepo.ListOptions{Trashed: model.TrashNone, IDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.checkCategories: categoryRepo.List failed: %v", err)
		return err
	}
	if len(cats) != len(ids) {
		return post.ErrCategoryNotFound
	}
	return nil
}

func (uc *implUseCase) syncCategories(ctx context.Context, current model.Post, ids []string) error {
	if err := uc.checkCategories(ctx, ids); err != nil {
		return err
	}

	existing := current.CategoryIDs()
	if err := uc.repo.RemoveCategories(ctx, current.ID, util.Difference(existing, ids)); err != nil {
		uc.l.Errorf(ctx, "post.usecase.syncCategories: repo.RemoveCategories failed: %v", err)
		return err
	}
	if err := uc.repo.AddCategories(ctx, current.ID, util.Difference(ids, existing)); err != nil {
		uc.l.Errorf(ctx, "post.usecase.syncCategories: repo.AddCategories failed: %v", err)
		return err
	}
	return nil
}
