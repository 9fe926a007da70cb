package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	categoryRepo "content-srv/internal/category/repository"
	"content-srv/internal/model"
	"content-srv/internal/post"
	"content-srv/internal/post/repository"
	"content-srv/internal/search"
	"content-srv/pkg/paginator"
)

// List - Page through posts. Vector search pages the ranked hits in memory,
// everything else pages in the database.
func (uc *implUseCase) List(ctx context.Context, input post.ListInput) (post.ListOutput, error) {
	if err := input.Paginate.Validate(); err != nil {
		return post.ListOutput{}, err
	}
	if !input.OrderBy.IsValid() {
		return post.ListOutput{}, post.ErrInvalidOrder
	}

	filter, err := uc.buildFilter(ctx, input)
	if err != nil {
		return post.ListOutput{}, err
	}

	if filter.Search != "" && uc.searchType == SearchTypeVector && uc.searcher != nil {
		return uc.vectorList(ctx, input, filter)
	}

	src := paginator.SourceFuncs[model.Post]{
		CountFunc: func(ctx context.Context) (int64, error) {
			return uc.repo.Count(ctx, filter)
		},
		FetchFunc: func(ctx context.Context, offset, limit int64) ([]model.Post, error) {
			return uc.repo.List(ctx, repository.ListOptions{
				Filter:  filter,
				OrderBy: input.OrderBy,
				Limit:   limit,
				Offset:  offset,
			})
		},
	}

	out, err := paginator.Paginate[model.Post](ctx, src, input.Paginate)
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.List: paginator.Paginate failed: %v", err)
		return post.ListOutput{}, err
	}
	return out, nil
}

func (uc *implUseCase) buildFilter(ctx context.Context, input post.ListInput) (repository.FilterOptions, error) {
	filter := repository.FilterOptions{
		Trashed:     input.Trashed,
		IsPublished: input.IsPublished,
		Search:      strings.TrimSpace(input.Search),
	}

	switch uc.searchType {
	case SearchTypeFulltext:
		filter.SearchMode = repository.SearchFulltext
	case SearchTypeLike:
		filter.SearchMode = repository.SearchLike
	}

	if input.CategoryID != "" {
		c, err := uc.categoryRepo.Detail(ctx, categoryRepo.DetailOptions{ID: input.CategoryID})
		if err != nil {
			if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
				return filter, post.ErrCategoryNotFound
			}
			uc.l.Errorf(ctx, "post.usecase.buildFilter: categoryRepo.Detail failed: %v", err)
			return filter, err
		}
		filter.CategoryMPath = c.MPath
	}

	return filter, nil
}

// vectorList - Load the ranked hits, keep the ones matching the filter, then page them.
func (uc *implUseCase) vectorList(ctx context.Context, input post.ListInput, filter repository.FilterOptions) (post.ListOutput, error) {
	hits, err := uc.searcher.Search(ctx, search.SearchInput{Text: filter.Search})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.vectorList: searcher.Search failed: %v", err)
		return post.ListOutput{}, fmt.Errorf("%w: %v", post.ErrSearchFailed, err)
	}

	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ID)
	}

	posts, err := uc.repo.FindByIDs(ctx, repository.FindByIDsOptions{
		IDs:         ids,
		WithTrashed: filter.Trashed != model.TrashNone && filter.Trashed != "",
	})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.vectorList: repo.FindByIDs failed: %v", err)
		return post.ListOutput{}, err
	}

	ranked := make([]model.Post, 0, len(posts))
	for _, p := range orderByIDs(posts, ids) {
		if matchesFilter(p, filter) {
			ranked = append(ranked, p)
		}
	}

	return paginator.ManualPaginate(input.Paginate, ranked)
}

func matchesFilter(p model.Post, f repository.FilterOptions) bool {
	if f.Trashed == model.TrashOnly && !p.IsTrashed() {
		return false
	}
	if f.IsPublished != nil && p.IsPublished() != *f.IsPublished {
		return false
	}
	if f.CategoryMPath != "" {
		for _, c := range p.Categories {
			if strings.HasPrefix(c.MPath, f.CategoryMPath) {
				return true
			}
		}
		return false
	}
	return true
}

// orderByIDs - Arrange posts in the order of ids. Ids without a post are skipped.
func orderByIDs(posts []model.Post, ids []string) []model.Post {
	byID := make(map[string]model.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	out := make([]model.Post, 0, len(posts))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
			delete(byID, id)
		}
	}
	return out
}
