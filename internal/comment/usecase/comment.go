package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"content-srv/internal/comment"
	"content-srv/internal/comment/repository"
	"content-srv/internal/model"
	postRepo "content-srv/internal/post/repository"
	"content-srv/pkg/paginator"
	"content-srv/pkg/tree"
	"content-srv/pkg/util"
)

// FindTrees - Build the reply forest. Rows arrive oldest first, so siblings keep that order.
func (uc *implUseCase) FindTrees(ctx context.Context, input comment.TreeInput) ([]*tree.Node[model.Comment], error) {
	rows, err := uc.repo.List(ctx, repository.ListOptions{PostID: input.PostID})
	if err != nil {
		uc.l.Errorf(ctx, "comment.usecase.FindTrees: repo.List failed: %v", err)
		return nil, err
	}

	return tree.Build(rows,
		func(c model.Comment) string { return c.ID },
		func(c model.Comment) (string, bool) {
			if c.ParentID == nil {
				return "", false
			}
			return *c.ParentID, true
		},
	), nil
}

// List - Page through the flattened reply forest.
func (uc *implUseCase) List(ctx context.Context, input comment.ListInput) (comment.ListOutput, error) {
	if err := input.Paginate.Validate(); err != nil {
		return comment.ListOutput{}, err
	}

	forest, err := uc.FindTrees(ctx, comment.TreeInput{PostID: input.PostID})
	if err != nil {
		return comment.ListOutput{}, err
	}

	return paginator.ManualPaginate(input.Paginate, tree.Flatten(forest))
}

// Detail - Get a comment.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Comment, error) {
	c, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return model.Comment{}, comment.ErrCommentNotFound
		}
		uc.l.Errorf(ctx, "comment.usecase.Detail: repo.Detail failed: %v", err)
		return model.Comment{}, err
	}
	return c, nil
}

// Create - Add a comment to a live post, optionally as a reply. The author is the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input comment.CreateInput) (model.Comment, error) {
	if !sc.IsAuthenticated() {
		return model.Comment{}, comment.ErrUnauthenticated
	}
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return model.Comment{}, comment.ErrBodyRequired
	}

	if _, err := uc.postRepo.Detail(ctx, postRepo.DetailOptions{ID: input.PostID}); err != nil {
		if errors.Is(err, postRepo.ErrPostNotFound) {
			return model.Comment{}, comment.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "comment.usecase.Create: postRepo.Detail failed: %v", err)
		return model.Comment{}, err
	}

	id := uuid.NewString()
	mpath := model.RootMPath(id)
	if input.ParentID != nil {
		parent, err := uc.repo.Detail(ctx, *input.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return model.Comment{}, comment.ErrParentNotFound
			}
			uc.l.Errorf(ctx, "comment.usecase.Create: repo.Detail parent failed: %v", err)
			return model.Comment{}, err
		}
		if parent.PostID != input.PostID {
			return model.Comment{}, comment.ErrParentMismatch
		}
		mpath = parent.MPath + id + model.MPathSeparator
	}

	c, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:       id,
		Body:     body,
		PostID:   input.PostID,
		ParentID: input.ParentID,
		MPath:    mpath,
		AuthorID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "comment.usecase.Create: repo.Create failed: %v", err)
		return model.Comment{}, err
	}
	return c, nil
}

// Delete - Remove comments and every reply below them. Unknown ids are ignored.
func (uc *implUseCase) Delete(ctx context.Context, ids []string) ([]model.Comment, error) {
	ids = util.Unique(ids)
	if len(ids) == 0 {
		return nil, comment.ErrIDsRequired
	}

	items, err := uc.repo.FindByIDs(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "comment.usecase.Delete: repo.FindByIDs failed: %v", err)
		return nil, err
	}

	mpaths := make([]string, 0, len(items))
	for _, c := range items {
		mpaths = append(mpaths, c.MPath)
	}
	if err := uc.repo.DeleteSubtrees(ctx, mpaths); err != nil {
		uc.l.Errorf(ctx, "comment.usecase.Delete: repo.DeleteSubtrees failed: %v", err)
		return nil, err
	}

	return items, nil
}
