package postgre

import (
	"time"

	"github.com/aarondl/null/v8"

	"content-srv/internal/model"
)

const commentColumns = "id, body, post_id, parent_id, mpath, author_id, created_at"

type commentRow struct {
	ID        string      `boil:"id"`
	Body      string      `boil:"body"`
	PostID    string      `boil:"post_id"`
	ParentID  null.String `boil:"parent_id"`
	MPath     string      `boil:"mpath"`
	AuthorID  string      `boil:"author_id"`
	CreatedAt time.Time   `boil:"created_at"`
}

func (row commentRow) toModel() model.Comment {
	return model.Comment{
		ID:        row.ID,
		Body:      row.Body,
		PostID:    row.PostID,
		ParentID:  row.ParentID.Ptr(),
		MPath:     row.MPath,
		AuthorID:  row.AuthorID,
		CreatedAt: row.CreatedAt,
	}
}

func toModels(rows []commentRow) []model.Comment {
	out := make([]model.Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out
}

// subtreePatterns - LIKE patterns matching each path and everything below it.
func subtreePatterns(mpaths []string) []string {
	out := make([]string, 0, len(mpaths))
	for _, p := range mpaths {
		if p == "" {
			continue
		}
		out = append(out, escapeLike(p)+"%")
	}
	return out
}
