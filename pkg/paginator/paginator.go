package paginator

import (
	"context"
	"fmt"
)

// Validate rejects non-positive page or limit.
func (q PaginateQuery) Validate() error {
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1, got %d", ErrInvalidArgument, q.Page)
	}
	if q.Limit < 1 {
		return fmt.Errorf("%w: limit must be at least 1, got %d", ErrInvalidArgument, q.Limit)
	}
	return nil
}

// Offset returns the row offset of the first item on the page.
func (q PaginateQuery) Offset() int64 {
	return int64(q.Page-1) * q.Limit
}

// TotalPages returns ceil(total/limit).
func TotalPages(total, limit int64) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + limit - 1) / limit)
}

// ItemCount returns how many items the page holds when total items are split by limit.
func ItemCount(page int, total, limit int64) int64 {
	totalPages := TotalPages(total, limit)
	switch {
	case page < totalPages:
		return limit
	case page == totalPages:
		return total - int64(totalPages-1)*limit
	default:
		return 0
	}
}

func newMeta(q PaginateQuery, total int64) Meta {
	return Meta{
		TotalItems:  total,
		ItemCount:   ItemCount(q.Page, total, q.Limit),
		PerPage:     q.Limit,
		TotalPages:  TotalPages(total, q.Limit),
		CurrentPage: q.Page,
	}
}

// Paginate counts src, fetches the requested slice and builds the page.
// The item count in Meta is derived from the count, so a concurrent write between
// the two calls can make it differ from len(Items).
func Paginate[T any](ctx context.Context, src Source[T], q PaginateQuery) (Result[T], error) {
	if err := q.Validate(); err != nil {
		return Result[T]{}, err
	}

	total, err := src.Count(ctx)
	if err != nil {
		return Result[T]{}, err
	}

	items, err := src.Fetch(ctx, q.Offset(), q.Limit)
	if err != nil {
		return Result[T]{}, err
	}
	if items == nil {
		items = []T{}
	}

	return Result[T]{
		Items: items,
		Meta:  newMeta(q, total),
	}, nil
}

// ManualPaginate slices an already loaded list.
func ManualPaginate[T any](q PaginateQuery, data []T) (Result[T], error) {
	if err := q.Validate(); err != nil {
		return Result[T]{}, err
	}

	total := int64(len(data))
	meta := newMeta(q, total)
	if meta.ItemCount == 0 {
		return Result[T]{Items: []T{}, Meta: meta}, nil
	}

	start := q.Offset()
	items := make([]T, meta.ItemCount)
	copy(items, data[start:start+meta.ItemCount])

	return Result[T]{Items: items, Meta: meta}, nil
}

// Map converts the items of a page and keeps its metadata.
func Map[T, R any](r Result[T], fn func(T) R) Result[R] {
	items := make([]R, len(r.Items))
	for i, it := range r.Items {
		items[i] = fn(it)
	}
	return Result[R]{Items: items, Meta: r.Meta}
}
