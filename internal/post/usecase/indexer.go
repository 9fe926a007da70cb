package usecase

import (
	"context"

	"content-srv/internal/model"
	"content-srv/internal/post"
	"content-srv/internal/search"
)

type directIndexer struct {
	search search.UseCase
}

// NewDirectIndexer updates the search index in the calling goroutine.
func NewDirectIndexer(s search.UseCase) post.Indexer {
	return &directIndexer{search: s}
}

func (i *directIndexer) Index(ctx context.Context, p model.Post) error {
	return i.search.Index(ctx, search.IndexInput{Post: p})
}

func (i *directIndexer) Remove(ctx context.Context, ids []string) error {
	return i.search.Remove(ctx, ids)
}
