package usecase

import (
	"context"
	"fmt"
	"strings"

	"content-srv/internal/search"
	"content-srv/internal/search/repository"
	"content-srv/pkg/voyage"
)

// Search - Embed the query, then run a vector search.
// Flow: check cache → embed on miss → save cache → search Qdrant
func (uc *implUseCase) Search(ctx context.Context, input search.SearchInput) ([]search.Hit, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, search.ErrEmptyQuery
	}

	limit := input.Limit
	if limit == 0 || limit > uc.cfg.Limit {
		limit = uc.cfg.Limit
	}

	vector, err := uc.queryVector(ctx, text)
	if err != nil {
		return nil, err
	}

	points, err := uc.points.Search(ctx, repository.SearchOptions{
		Vector: vector,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", search.ErrSearchFailed, err)
	}

	hits := make([]search.Hit, 0, len(points))
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		hits = append(hits, search.Hit{ID: p.ID, Score: p.Score})
	}
	return hits, nil
}

// queryVector - Cached query embedding. Cache errors fall back to embedding.
func (uc *implUseCase) queryVector(ctx context.Context, text string) ([]float32, error) {
	if uc.cache != nil {
		vector, ok, err := uc.cache.Get(ctx, text)
		if err != nil {
			uc.l.Warnf(ctx, "search.usecase.queryVector: cache.Get failed: %v", err)
		}
		if ok {
			return vector, nil
		}
	}

	vectors, err := uc.voyage.Embed(ctx, []string{text}, voyage.InputTypeQuery)
	if err != nil || len(vectors) == 0 {
		uc.l.Errorf(ctx, "search.usecase.queryVector: voyage.Embed failed: %v", err)
		return nil, fmt.Errorf("%w: %v", search.ErrEmbeddingFailed, err)
	}

	if uc.cache != nil {
		if err := uc.cache.Save(ctx, text, vectors[0], uc.cfg.CacheTTL); err != nil {
			uc.l.Warnf(ctx, "search.usecase.queryVector: cache.Save failed: %v", err)
		}
	}
	return vectors[0], nil
}
