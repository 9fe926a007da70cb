package comment

import (
	"content-srv/internal/model"
	"content-srv/pkg/paginator"
	"content-srv/pkg/tree"
)

// TreeInput limits the forest to one post. An empty PostID returns the comments of every post.
type TreeInput struct {
	PostID string
}

type ListInput struct {
	Paginate paginator.PaginateQuery
	PostID   string
}

type ListOutput = paginator.Result[tree.Flat[model.Comment]]

type CreateInput struct {
	Body     string
	PostID   string
	ParentID *string
}
