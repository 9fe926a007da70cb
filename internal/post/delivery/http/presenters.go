package http

import (
	"bytes"
	"encoding/json"
	"time"

	"content-srv/internal/crud"
	"content-srv/internal/model"
	"content-srv/internal/post"
	"content-srv/pkg/paginator"
)

type listReq struct {
	Paginate    paginator.PaginateQuery `form:"-"`
	Trashed     model.TrashMode         `form:"-"`
	CategoryID  string                  `form:"category" binding:"omitempty,uuid"`
	OrderBy     model.PostOrder         `form:"orderBy"`
	IsPublished *bool                   `form:"isPublished"`
	Search      string                  `form:"search" binding:"max=255"`
}

func (r listReq) toInput() post.ListInput {
	return post.ListInput{
		Paginate:    r.Paginate,
		CategoryID:  r.CategoryID,
		OrderBy:     r.OrderBy,
		IsPublished: r.IsPublished,
		Search:      r.Search,
		Trashed:     r.Trashed,
	}
}

type detailReq struct {
	ID      string
	Trashed model.TrashMode
}

func (r detailReq) toInput() post.DetailInput {
	return post.DetailInput{
		ID:          r.ID,
		WithTrashed: r.Trashed != model.TrashNone,
	}
}

type storeReq struct {
	Title       string         `json:"title" binding:"required,max=255"`
	Body        string         `json:"body"`
	Summary     string         `json:"summary"`
	Keywords    []string       `json:"keywords" binding:"omitempty,dive,max=64"`
	Type        model.PostType `json:"type" binding:"omitempty,oneof=html markdown"`
	PublishedAt *time.Time     `json:"published_at"`
	CustomOrder int            `json:"custom_order"`
	Categories  []string       `json:"categories" binding:"omitempty,dive,uuid"`
}

func (r storeReq) toInput() post.CreateInput {
	return post.CreateInput{
		Title:       r.Title,
		Body:        r.Body,
		Summary:     r.Summary,
		Keywords:    r.Keywords,
		Type:        r.Type,
		PublishedAt: r.PublishedAt,
		CustomOrder: r.CustomOrder,
		CategoryIDs: r.Categories,
	}
}

// optionalTime tells an absent field apart from an explicit null.
type optionalTime struct {
	Set   bool
	Value *time.Time
}

func (o *optionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	o.Value = &t
	return nil
}

type updateReq struct {
	ID          string          `json:"-"`
	Title       *string         `json:"title" binding:"omitempty,max=255"`
	Body        *string         `json:"body"`
	Summary     *string         `json:"summary"`
	Keywords    *[]string       `json:"keywords" binding:"omitempty,dive,max=64"`
	Type        *model.PostType `json:"type" binding:"omitempty,oneof=html markdown"`
	PublishedAt optionalTime    `json:"published_at"`
	CustomOrder *int            `json:"custom_order"`
	Categories  *[]string       `json:"categories" binding:"omitempty,dive,uuid"`
}

func (r updateReq) toInput() post.UpdateInput {
	in := post.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Body:         r.Body,
		Summary:      r.Summary,
		Type:         r.Type,
		PublishedSet: r.PublishedAt.Set,
		PublishedAt:  r.PublishedAt.Value,
		CustomOrder:  r.CustomOrder,
	}
	if r.Keywords != nil {
		in.KeywordsSet = true
		in.Keywords = *r.Keywords
	}
	if r.Categories != nil {
		in.CategoriesSet = true
		in.CategoryIDs = *r.Categories
	}
	return in
}

func toDeleteInput(r crud.DeleteReq) post.DeleteInput {
	return post.DeleteInput{
		IDs:   r.IDs,
		Trash: r.Trash,
	}
}

type categoryResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type postResp struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Body         string         `json:"body"`
	Summary      string         `json:"summary"`
	Keywords     []string       `json:"keywords"`
	Type         model.PostType `json:"type"`
	PublishedAt  *time.Time     `json:"published_at"`
	CustomOrder  int            `json:"custom_order"`
	CommentCount int64          `json:"comment_count"`
	Categories   []categoryResp `json:"categories"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    *time.Time     `json:"deleted_at,omitempty"`
}

type listResp struct {
	Items []postResp     `json:"items"`
	Meta  paginator.Meta `json:"meta"`
}

func newPostResp(p model.Post) postResp {
	cats := make([]categoryResp, 0, len(p.Categories))
	for _, c := range p.Categories {
		cats = append(cats, categoryResp{ID: c.ID, Name: c.Name})
	}
	keywords := p.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return postResp{
		ID:           p.ID,
		Title:        p.Title,
		Body:         p.Body,
		Summary:      p.Summary,
		Keywords:     keywords,
		Type:         p.Type,
		PublishedAt:  p.PublishedAt,
		CustomOrder:  p.CustomOrder,
		CommentCount: p.CommentCount,
		Categories:   cats,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		DeletedAt:    p.DeletedAt,
	}
}

func (h *handler) newListResp(o post.ListOutput) listResp {
	page := paginator.Map(o, newPostResp)
	return listResp{Items: page.Items, Meta: page.Meta}
}

func (h *handler) newPostsResp(items []model.Post) []postResp {
	out := make([]postResp, 0, len(items))
	for _, p := range items {
		out = append(out, newPostResp(p))
	}
	return out
}
