package repository

import (
	"time"

	"content-srv/internal/model"
)

// SearchMode selects how FilterOptions.Search is matched.
type SearchMode string

const (
	SearchLike     SearchMode = "like"
	SearchFulltext SearchMode = "fulltext"
)

type FilterOptions struct {
	Trashed     model.TrashMode
	IsPublished *bool
	// CategoryMPath limits posts to a category and its descendants.
	CategoryMPath string
	Search        string
	SearchMode    SearchMode
}

type ListOptions struct {
	Filter  FilterOptions
	OrderBy model.PostOrder
	Limit   int64
	Offset  int64
}

type FindByIDsOptions struct {
	IDs         []string
	WithTrashed bool
}

type DetailOptions struct {
	ID          string
	WithTrashed bool
}

type CreateOptions struct {
	ID          string
	Title       string
	Body        string
	Summary     string
	Keywords    []string
	Type        model.PostType
	PublishedAt *time.Time
	CustomOrder int
	CategoryIDs []string
}

type UpdateOptions struct {
	ID           string
	Title        *string
	Body         *string
	Summary      *string
	Keywords     []string
	KeywordsSet  bool
	Type         *model.PostType
	PublishedSet bool
	PublishedAt  *time.Time
	CustomOrder  *int
}
