package post

import (
	"time"

	"content-srv/internal/model"
	"content-srv/pkg/paginator"
)

type ListInput struct {
	Paginate    paginator.PaginateQuery
	CategoryID  string
	OrderBy     model.PostOrder
	IsPublished *bool
	Search      string
	Trashed     model.TrashMode
}

type ListOutput = paginator.Result[model.Post]

type DetailInput struct {
	ID          string
	WithTrashed bool
}

type CreateInput struct {
	Title       string
	Body        string
	Summary     string
	Keywords    []string
	Type        model.PostType
	PublishedAt *time.Time
	CustomOrder int
	CategoryIDs []string
}

// UpdateInput changes only the set fields. A nil CategoryIDs keeps the relations,
// an empty one clears them. With PublishedSet, a nil PublishedAt unpublishes.
type UpdateInput struct {
	ID            string
	Title         *string
	Body          *string
	Summary       *string
	Keywords      []string
	KeywordsSet   bool
	Type          *model.PostType
	PublishedSet  bool
	PublishedAt   *time.Time
	CustomOrder   *int
	CategoryIDs   []string
	CategoriesSet bool
}

type DeleteInput struct {
	IDs   []string
	Trash bool
}

type SyncIndexInput struct {
	ID      string
	Deleted bool
}
