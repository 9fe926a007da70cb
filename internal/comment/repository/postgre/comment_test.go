package postgre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/sqlboiler/v4/queries"

	"content-srv/internal/comment/repository"
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
		args     []interface{}
	}{
		{
			name:     "all posts",
			opts:     repository.ListOptions{},
			contains: []string{"content_comments", "ORDER BY created_at ASC, id ASC"},
			absent:   []string{"post_id ="},
		},
		{
			name:     "one post",
			opts:     repository.ListOptions{PostID: "p1"},
			contains: []string{"post_id = $1"},
			args:     []interface{}{"p1"},
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
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestBuildDetailQuery(t *testing.T) {
	r := &implRepository{l: log.NewNop()}

	sqlStr, args := queries.BuildQuery(postgre.NewQuery(r.buildDetailQuery("x")...))
	assert.Contains(t, sqlStr, "id = $1")
	assert.Contains(t, sqlStr, "LIMIT 1")
	assert.Equal(t, []interface{}{"x"}, args)
}

func TestBuildFindByIDsQuery(t *testing.T) {
	r := &implRepository{l: log.NewNop()}

	sqlStr, args := queries.BuildQuery(postgre.NewQuery(r.buildFindByIDsQuery([]string{"a", "b"})...))
	assert.Contains(t, sqlStr, "id IN ($1,$2)")
	assert.Equal(t, []interface{}{"a", "b"}, args)
}

func TestSubtreePatterns(t *testing.T) {
	assert.Equal(t, []string{`a.%`, `a.b\_c.%`}, subtreePatterns([]string{"a.", "", "a.b_c."}))
	assert.Empty(t, subtreePatterns(nil))
}
