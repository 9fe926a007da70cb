package search

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Index embeds a post and stores it in the vector index.
	Index(ctx context.Context, input IndexInput) error
	Remove(ctx context.Context, ids []string) error
	// Search returns post ids ranked by similarity to the text, best first.
	Search(ctx context.Context, input SearchInput) ([]Hit, error)
	// EnsureCollection creates the vector collection when it is missing.
	EnsureCollection(ctx context.Context) error
}
