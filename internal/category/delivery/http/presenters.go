package http

import (
	"bytes"
	"encoding/json"
	"time"

	"content-srv/internal/category"
	"content-srv/internal/crud"
	"content-srv/internal/model"
	"content-srv/pkg/paginator"
	"content-srv/pkg/tree"
)

type listReq struct {
	Paginate paginator.PaginateQuery
	Trashed  model.TrashMode
}

func (r listReq) toInput() category.ListInput {
	return category.ListInput{
		Paginate: r.Paginate,
		Trashed:  r.Trashed,
	}
}

type detailReq struct {
	ID      string
	Trashed model.TrashMode
}

func (r detailReq) toInput() category.DetailInput {
	return category.DetailInput{
		ID:          r.ID,
		WithTrashed: r.Trashed != model.TrashNone,
	}
}

type storeReq struct {
	Name        string  `json:"name" binding:"required,max=255"`
	CustomOrder int     `json:"custom_order"`
	ParentID    *string `json:"parent_id" binding:"omitempty,uuid"`
}

func (r storeReq) toInput() category.CreateInput {
	return category.CreateInput{
		Name:        r.Name,
		CustomOrder: r.CustomOrder,
		ParentID:    r.ParentID,
	}
}

// optionalID tells an absent field apart from an explicit null.
type optionalID struct {
	Set   bool
	Value *string
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

type updateReq struct {
	ID          string     `json:"-"`
	Name        *string    `json:"name" binding:"omitempty,max=255"`
	CustomOrder *int       `json:"custom_order"`
	ParentID    optionalID `json:"parent_id"`
}

func (r updateReq) toInput() category.UpdateInput {
	return category.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		CustomOrder: r.CustomOrder,
		ParentSet:   r.ParentID.Set,
		ParentID:    r.ParentID.Value,
	}
}

func toDeleteInput(r crud.DeleteReq) category.DeleteInput {
	return category.DeleteInput{
		IDs:   r.IDs,
		Trash: r.Trash,
	}
}

type categoryResp struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	CustomOrder int        `json:"custom_order"`
	ParentID    *string    `json:"parent_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

type flatCategoryResp struct {
	categoryResp
	Depth  int           `json:"depth"`
	Parent *categoryResp `json:"parent"`
}

type treeNodeResp struct {
	categoryResp
	Children []treeNodeResp `json:"children"`
}

type listResp struct {
	Items []flatCategoryResp `json:"items"`
	Meta  paginator.Meta     `json:"meta"`
}

type detailResp struct {
	categoryResp
	Parent *categoryResp `json:"parent"`
}

func newCategoryResp(c model.Category) categoryResp {
	return categoryResp{
		ID:          c.ID,
		Name:        c.Name,
		CustomOrder: c.CustomOrder,
		ParentID:    c.ParentID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}
}

func newCategoryRespPtr(c *model.Category) *categoryResp {
	if c == nil {
		return nil
	}
	r := newCategoryResp(*c)
	return &r
}

func (h *handler) newListResp(o category.ListOutput) listResp {
	page := paginator.Map(o, func(f tree.Flat[model.Category]) flatCategoryResp {
		return flatCategoryResp{
			categoryResp: newCategoryResp(f.Value),
			Depth:        f.Depth,
			Parent:       newCategoryRespPtr(f.Parent),
		}
	})
	return listResp{Items: page.Items, Meta: page.Meta}
}

func (h *handler) newTreeResp(forest []*tree.Node[model.Category]) []treeNodeResp {
	out := make([]treeNodeResp, 0, len(forest))
	for _, n := range forest {
		out = append(out, treeNodeResp{
			categoryResp: newCategoryResp(n.Value),
			Children:     h.newTreeResp(n.Children),
		})
	}
	return out
}

func (h *handler) newDetailResp(o category.DetailOutput) detailResp {
	return detailResp{
		categoryResp: newCategoryResp(o.Category),
		Parent:       newCategoryRespPtr(o.Parent),
	}
}

func (h *handler) newCategoriesResp(items []model.Category) []categoryResp {
	out := make([]categoryResp, 0, len(items))
	for _, c := range items {
		out = append(out, newCategoryResp(c))
	}
	return out
}
