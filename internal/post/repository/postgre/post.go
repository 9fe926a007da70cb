package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/lib/pq"
	"github.com/volatiletech/sqlboiler/v4/queries"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"

	"content-srv/internal/model"
	"content-srv/internal/post/repository"
	"content-srv/pkg/postgre"
	"content-srv/pkg/util"
)

// List - List posts matching opts.
func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Post, error) {
	posts, err := r.load(ctx, r.buildListQuery(opts))
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.List: Failed to list posts: %v", err)
		return nil, err
	}
	return posts, nil
}

// Count - Count posts matching opts.
func (r *implRepository) Count(ctx context.Context, opts repository.FilterOptions) (int64, error) {
	var n int64
	q := postgre.Count(postgre.NewQuery(r.buildCountQuery(opts)...))
	if err := q.QueryRowContext(ctx, postgre.Executor(ctx, r.db)).Scan(&n); err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.Count: Failed to count posts: %v", err)
		return 0, err
	}
	return n, nil
}

// FindByIDs - Get posts by ids.
func (r *implRepository) FindByIDs(ctx context.Context, opts repository.FindByIDsOptions) ([]model.Post, error) {
	if len(opts.IDs) == 0 {
		return []model.Post{}, nil
	}
	posts, err := r.load(ctx, r.buildFindByIDsQuery(opts.IDs, opts.WithTrashed))
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.FindByIDs: Failed to get posts: %v", err)
		return nil, err
	}
	return posts, nil
}

// Detail - Get post by id.
func (r *implRepository) Detail(ctx context.Context, opts repository.DetailOptions) (model.Post, error) {
	posts, err := r.load(ctx, r.buildFindByIDsQuery([]string{opts.ID}, opts.WithTrashed))
	if err != nil {
		if errors.Is(postgre.MapError(err), postgre.ErrInvalidText) {
			return model.Post{}, repository.ErrPostNotFound
		}
		r.l.Errorf(ctx, "post.repository.postgre.Detail: Failed to get post: %v", err)
		return model.Post{}, err
	}
	if len(posts) == 0 {
		return model.Post{}, repository.ErrPostNotFound
	}
	return posts[0], nil
}

// Create - Insert a post and its category relations.
func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) error {
	now := time.Now()
	keywords := opts.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	_, err := postgre.Executor(ctx, r.db).ExecContext(ctx,
		`INSERT INTO content_posts (id, title, body, summary, keywords, type, published_at, custom_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		opts.ID, opts.Title, opts.Body, opts.Summary, pq.Array(keywords), string(opts.Type),
		null.TimeFromPtr(opts.PublishedAt), opts.CustomOrder, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.Create: Failed to insert post: %v", err)
		return repository.ErrCreateFailed
	}

	return r.AddCategories(ctx, opts.ID, opts.CategoryIDs)
}

// Update - Update the set columns of a post.
func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) error {
	q := postgre.NewQuery(qm.From("content_posts"), qm.Where("id = ?", opts.ID))
	queries.SetUpdate(q, buildUpdateCols(opts))

	res, err := q.ExecContext(ctx, postgre.Executor(ctx, r.db))
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.Update: Failed to update post: %v", err)
		return repository.ErrUpdateFailed
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// AddCategories - Relate a post to categories. Existing relations are kept.
func (r *implRepository) AddCategories(ctx context.Context, postID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	_, err := postgre.Executor(ctx, r.db).ExecContext(ctx,
		`INSERT INTO content_posts_categories (post_id, category_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`,
		postID, pq.Array(categoryIDs),
	)
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.AddCategories: Failed to add categories: %v", err)
		return repository.ErrRelationFailed
	}
	return nil
}

// RemoveCategories - Drop relations between a post and categories.
func (r *implRepository) RemoveCategories(ctx context.Context, postID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	_, err := postgre.Executor(ctx, r.db).ExecContext(ctx,
		`DELETE FROM content_posts_categories WHERE post_id = $1 AND category_id = ANY($2::uuid[])`,
		postID, pq.Array(categoryIDs),
	)
	if err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.RemoveCategories: Failed to remove categories: %v", err)
		return repository.ErrRelationFailed
	}
	return nil
}

// SoftDelete - Mark posts as deleted.
func (r *implRepository) SoftDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := postgre.NewQuery(byIDs(ids)...)
	queries.SetUpdate(q, map[string]interface{}{"deleted_at": time.Now()})

	if _, err := q.ExecContext(ctx, postgre.Executor(ctx, r.db)); err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.SoftDelete: Failed to soft delete posts: %v", err)
		return repository.ErrDeleteFailed
	}
	return nil
}

// HardDelete - Remove posts. Relations and comments cascade.
func (r *implRepository) HardDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := postgre.NewQuery(byIDs(ids)...)
	queries.SetDelete(q)

	if _, err := q.ExecContext(ctx, postgre.Executor(ctx, r.db)); err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.HardDelete: Failed to delete posts: %v", err)
		return repository.ErrDeleteFailed
	}
	return nil
}

// Restore - Clear the deleted mark of posts.
func (r *implRepository) Restore(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := postgre.NewQuery(byIDs(ids)...)
	queries.SetUpdate(q, map[string]interface{}{"deleted_at": nil, "updated_at": time.Now()})

	if _, err := q.ExecContext(ctx, postgre.Executor(ctx, r.db)); err != nil {
		r.l.Errorf(ctx, "post.repository.postgre.Restore: Failed to restore posts: %v", err)
		return repository.ErrUpdateFailed
	}
	return nil
}

// load - Run a post query, attach categories and apply the transforms.
func (r *implRepository) load(ctx context.Context, mods []qm.QueryMod) ([]model.Post, error) {
	exec := postgre.Executor(ctx, r.db)

	var rows []postRow
	if err := postgre.NewQuery(mods...).Bind(ctx, exec, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []model.Post{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var catRows []postCategoryRow
	if err := postgre.NewQuery(r.buildCategoriesQuery(ids)...).Bind(ctx, exec, &catRows); err != nil {
		return nil, err
	}
	byPost := make(map[string][]model.Category, len(rows))
	for _, cr := range catRows {
		byPost[cr.PostID] = append(byPost[cr.PostID], cr.toModel())
	}

	posts := make([]model.Post, 0, len(rows))
	for _, row := range rows {
		p := row.toModel()
		if cats, ok := byPost[p.ID]; ok {
			p.Categories = cats
		}
		posts = append(posts, repository.Apply(p, r.transforms...))
	}
	return posts, nil
}

func byIDs(ids []string) []qm.QueryMod {
	return []qm.QueryMod{
		qm.From("content_posts"),
		qm.WhereIn("id IN ?", util.ToInterfaceSlice(ids)...),
	}
}
