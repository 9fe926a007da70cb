package postgre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/sqlboiler/v4/queries"

	"content-srv/internal/category/repository"
	"content-srv/internal/model"
	"content-srv/pkg/log"
	"content-srv/pkg/postgre"
)

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{l: log.NewNop()}

	tests := []struct {
		name     string
		opts     repository.ListOptions
		contains []string
		absent   []string
		args     int
	}{
		{
			name:     "live only",
			opts:     repository.ListOptions{},
			contains: []string{"deleted_at IS NULL", "ORDER BY custom_order ASC, created_at ASC"},
		},
		{
			name:   "all",
			opts:   repository.ListOptions{Trashed: model.TrashAll},
			absent: []string{"deleted_at"},
		},
		{
			name:     "only with ids",
			opts:     repository.ListOptions{Trashed: model.TrashOnly, IDs: []string{"x", "y"}},
			contains: []string{"deleted_at IS NOT NULL", "id IN ($1,$2)"},
			args:     2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlStr, args := queries.BuildQuery(postgre.NewQuery(r.buildListQuery(tt.opts)...))
			for _, s := range tt.contains {
				assert.Contains(t, sqlStr, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, sqlStr, s)
			}
			assert.Len(t, args, tt.args)
		})
	}
}

func TestBuildDetailQuery(t *testing.T) {
	r := &implRepository{l: log.NewNop()}

	sqlStr, args := queries.BuildQuery(postgre.NewQuery(r.buildDetailQuery(repository.DetailOptions{ID: "x"})...))
	assert.Contains(t, sqlStr, "deleted_at IS NULL")
	assert.Contains(t, sqlStr, "LIMIT 1")
	assert.Equal(t, []interface{}{"x"}, args)

	sqlStr, _ = queries.BuildQuery(postgre.NewQuery(r.buildDetailQuery(repository.DetailOptions{ID: "x", WithTrashed: true})...))
	assert.NotContains(t, sqlStr, "deleted_at IS NULL")
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\_b\%c\\.`, escapeLike(`a_b%c\.`))
}

func TestBuildUpdateCols(t *testing.T) {
	name := "n"
	cols := buildUpdateCols(&name, nil, true, nil)
	assert.Equal(t, "n", cols["name"])
	assert.Contains(t, cols, "parent_id")
	assert.Contains(t, cols, "updated_at")
	assert.NotContains(t, cols, "custom_order")
}
