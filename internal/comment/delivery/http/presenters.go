package http

import (
	"time"

	"content-srv/internal/comment"
	"content-srv/internal/model"
	"content-srv/pkg/paginator"
	"content-srv/pkg/tree"
)

type postQuery struct {
	PostID string `form:"post" binding:"omitempty,uuid"`
}

type listReq struct {
	Paginate paginator.PaginateQuery
	PostID   string
}

func (r listReq) toInput() comment.ListInput {
	return comment.ListInput{
		Paginate: r.Paginate,
		PostID:   r.PostID,
	}
}

type storeReq struct {
	Body     string  `json:"body" binding:"required,max=10000"`
	PostID   string  `json:"post_id" binding:"required,uuid"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
}

func (r storeReq) toInput() comment.CreateInput {
	return comment.CreateInput{
		Body:     r.Body,
		PostID:   r.PostID,
		ParentID: r.ParentID,
	}
}

type deleteReq struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

type commentResp struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	PostID    string    `json:"post_id"`
	ParentID  *string   `json:"parent_id"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type flatCommentResp struct {
	commentResp
	Depth  int          `json:"depth"`
	Parent *commentResp `json:"parent"`
}

type treeNodeResp struct {
	commentResp
	Children []treeNodeResp `json:"children"`
}

type listResp struct {
	Items []flatCommentResp `json:"items"`
	Meta  paginator.Meta    `json:"meta"`
}

func newCommentResp(c model.Comment) commentResp {
	return commentResp{
		ID:        c.ID,
		Body:      c.Body,
		PostID:    c.PostID,
		ParentID:  c.ParentID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
	}
}

func (h *handler) newListResp(o comment.ListOutput) listResp {
	page := paginator.Map(o, func(f tree.Flat[model.Comment]) flatCommentResp {
		r := flatCommentResp{commentResp: newCommentResp(f.Value), Depth: f.Depth}
		if f.Parent != nil {
			p := newCommentResp(*f.Parent)
			r.Parent = &p
		}
		return r
	})
	return listResp{Items: page.Items, Meta: page.Meta}
}

func (h *handler) newTreeResp(forest []*tree.Node[model.Comment]) []treeNodeResp {
	out := make([]treeNodeResp, 0, len(forest))
	for _, n := range forest {
		out = append(out, treeNodeResp{
			commentResp: newCommentResp(n.Value),
			Children:    h.newTreeResp(n.Children),
		})
	}
	return out
}

func (h *handler) newCommentsResp(items []model.Comment) []commentResp {
	out := make([]commentResp, 0, len(items))
	for _, c := range items {
		out = append(out, newCommentResp(c))
	}
	return out
}
