package usecase

import (
	"context"
	"fmt"
	"strings"

	"content-srv/internal/model"
	"content-srv/internal/search"
	"content-srv/internal/search/repository"
	"content-srv/pkg/voyage"
)

// Index - Embed a post as a document and upsert its point.
func (uc *implUseCase) Index(ctx context.Context, input search.IndexInput) error {
	p := input.Post

	vectors, err := uc.voyage.Embed(ctx, []string{documentText(p)}, voyage.InputTypeDocument)
	if err != nil || len(vectors) == 0 {
		uc.l.Errorf(ctx, "search.usecase.Index: voyage.Embed failed for post %s: %v", p.ID, err)
		return fmt.Errorf("%w: %v", search.ErrEmbeddingFailed, err)
	}

	if err := uc.points.Upsert(ctx, repository.UpsertOptions{
		ID:     p.ID,
		Vector: vectors[0],
		Payload: repository.PostPayload{
			PostID:    p.ID,
			Title:     p.Title,
			Published: p.IsPublished(),
		},
	}); err != nil {
		return fmt.Errorf("%w: %v", search.ErrIndexFailed, err)
	}

	uc.l.Debugf(ctx, "search.usecase.Index: Indexed post %s", p.ID)
	return nil
}

// Remove - Delete the points of posts.
func (uc *implUseCase) Remove(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := uc.points.Delete(ctx, ids); err != nil {
		return fmt.Errorf("%w: %v", search.ErrIndexFailed, err)
	}
	return nil
}

// EnsureCollection - Create the collection with the configured size and distance.
func (uc *implUseCase) EnsureCollection(ctx context.Context) error {
	return uc.points.EnsureCollection(ctx, repository.EnsureCollectionOptions{
		VectorSize: uc.cfg.VectorSize,
		Distance:   uc.cfg.Distance,
	})
}

// documentText - Text embedded for a post: title, summary, body, then category names.
func documentText(p model.Post) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Title, p.Summary, p.Body} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(p.Categories) > 0 {
		names := make([]string, 0, len(p.Categories))
		for _, c := range p.Categories {
			names = append(names, c.Name)
		}
		parts = append(parts, strings.Join(names, ", "))
	}
	return strings.Join(parts, "\n\n")
}
