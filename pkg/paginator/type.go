package paginator

import "context"

// PaginateQuery contains pagination parameters for a request.
type PaginateQuery struct {
	Page  int   `json:"page" form:"page"`   // 1-indexed
	Limit int64 `json:"limit" form:"limit"` // items per page
}

// Meta is the pagination metadata returned with every page.
type Meta struct {
	TotalItems  int64 `json:"totalItems"`
	ItemCount   int64 `json:"itemCount"`
	PerPage     int64 `json:"perPage"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// Result is one page of items.
type Result[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// Source is a lazily evaluated row set that can be counted and sliced.
// Count and Fetch are independent calls; no snapshot is shared between them.
type Source[T any] interface {
	Count(ctx context.Context) (int64, error)
	Fetch(ctx context.Context, offset, limit int64) ([]T, error)
}

// SourceFuncs adapts two functions to a Source.
type SourceFuncs[T any] struct {
	CountFunc func(ctx context.Context) (int64, error)
	FetchFunc func(ctx context.Context, offset, limit int64) ([]T, error)
}

func (s SourceFuncs[T]) Count(ctx context.Context) (int64, error) {
	return s.CountFunc(ctx)
}

func (s SourceFuncs[T]) Fetch(ctx context.Context, offset, limit int64) ([]T, error) {
	return s.FetchFunc(ctx, offset, limit)
}
