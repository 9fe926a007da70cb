package category

import (
	"content-srv/internal/model"
	"content-srv/pkg/paginator"
	"content-srv/pkg/tree"
)

type TreeInput struct {
	Trashed model.TrashMode
}

type ListInput struct {
	Paginate paginator.PaginateQuery
	Trashed  model.TrashMode
}

// ListOutput is a page of the flattened tree.
type ListOutput = paginator.Result[tree.Flat[model.Category]]

type DetailInput struct {
	ID          string
	WithTrashed bool
}

type DetailOutput struct {
	Category model.Category
	Parent   *model.Category
}

type CreateInput struct {
	Name        string
	CustomOrder int
	ParentID    *string
}

// UpdateInput changes only the set fields. With ParentSet, a nil ParentID makes the category a root.
type UpdateInput struct {
	ID          string
	Name        *string
	CustomOrder *int
	ParentSet   bool
	ParentID    *string
}

type DeleteInput struct {
	IDs   []string
	Trash bool
}
