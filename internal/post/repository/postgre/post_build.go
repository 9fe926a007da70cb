package postgre

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/volatiletech/sqlboiler/v4/types"

	"content-srv/internal/model"
	"content-srv/internal/post/repository"
)

type postRow struct {
	ID           string            `boil:"id"`
	Title        string            `boil:"title"`
	Body         string            `boil:"body"`
	Summary      string            `boil:"summary"`
	Keywords     types.StringArray `boil:"keywords"`
	Type         string            `boil:"type"`
	PublishedAt  null.Time         `boil:"published_at"`
	CustomOrder  int               `boil:"custom_order"`
	CommentCount int64             `boil:"comment_count"`
	CreatedAt    time.Time         `boil:"created_at"`
	UpdatedAt    time.Time         `boil:"updated_at"`
	DeletedAt    null.Time         `boil:"deleted_at"`
}

type postCategoryRow struct {
	PostID      string      `boil:"post_id"`
	ID          string      `boil:"id"`
	Name        string      `boil:"name"`
	CustomOrder int         `boil:"custom_order"`
	ParentID    null.String `boil:"parent_id"`
	MPath       string      `boil:"mpath"`
	CreatedAt   time.Time   `boil:"created_at"`
	UpdatedAt   time.Time   `boil:"updated_at"`
}

func timePtr(t null.Time) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func (row postRow) toModel() model.Post {
	keywords := []string(row.Keywords)
	if keywords == nil {
		keywords = []string{}
	}
	return model.Post{
		ID:           row.ID,
		Title:        row.Title,
		Body:         row.Body,
		Summary:      row.Summary,
		Keywords:     keywords,
		Type:         model.PostType(row.Type),
		PublishedAt:  timePtr(row.PublishedAt),
		CustomOrder:  row.CustomOrder,
		CommentCount: row.CommentCount,
		Categories:   []model.Category{},
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		DeletedAt:    timePtr(row.DeletedAt),
	}
}

func (row postCategoryRow) toModel() model.Category {
	return model.Category{
		ID:          row.ID,
		Name:        row.Name,
		CustomOrder: row.CustomOrder,
		ParentID:    row.ParentID.Ptr(),
		MPath:       row.MPath,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// buildUpdateCols - Build the SET map for an update. Only set fields are written.
func buildUpdateCols(opts repository.UpdateOptions) map[string]interface{} {
	cols := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if opts.Title != nil {
		cols["title"] = *opts.Title
	}
	if opts.Body != nil {
		cols["body"] = *opts.Body
	}
	if opts.Summary != nil {
		cols["summary"] = *opts.Summary
	}
	if opts.KeywordsSet {
		keywords := opts.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		cols["keywords"] = types.StringArray(keywords)
	}
	if opts.Type != nil {
		cols["type"] = string(*opts.Type)
	}
	if opts.PublishedSet {
		cols["published_at"] = null.TimeFromPtr(opts.PublishedAt)
	}
	if opts.CustomOrder != nil {
		cols["custom_order"] = *opts.CustomOrder
	}
	return cols
}
