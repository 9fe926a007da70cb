package search

import "errors"

var (
	ErrEmptyQuery      = errors.New("search: query text is required")
	ErrEmbeddingFailed = errors.New("search: embedding failed")
	ErrIndexFailed     = errors.New("search: index update failed")
	ErrSearchFailed    = errors.New("search: vector search failed")
)
