package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/volatiletech/sqlboiler/v4/queries"

	"content-srv/internal/category/repository"
	"content-srv/internal/model"
	"content-srv/pkg/postgre"
)

// List - List categories matching opts.
func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Category, error) {
	var rows []categoryRow
	q := postgre.NewQuery(r.buildListQuery(opts)...)
	if err := q.Bind(ctx, postgre.Executor(ctx, r.db), &rows); err != nil {
		r.l.Errorf(ctx, "category.repository.postgre.List: Failed to list categories: %v", err)
		return nil, err
	}

	return toModels(rows), nil
}

// Detail - Get category by id.
func (r *implRepository) Detail(ctx context.Context, opts repository.DetailOptions) (model.Category, error) {
	var row categoryRow
	q := postgre.NewQuery(r.buildDetailQuery(opts)...)
	if err := q.Bind(ctx, postgre.Executor(ctx, r.db), &row); err != nil {
		err = postgre.MapError(err)
		if errors.Is(err, postgre.ErrNotFound) || errors.Is(err, postgre.ErrInvalidText) {
			return model.Category{}, repository.ErrCategoryNotFound
		}
		r.l.Errorf(ctx, "category.repository.postgre.Detail: Failed to get category: %v", err)
		return model.Category{}, err
	}

	return row.toModel(), nil
}

// Create - Insert a new category.
func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Category, error) {
	now := time.Now()

	var row categoryRow
	err := queries.Raw(
		`INSERT INTO content_categories (id, name, custom_order, parent_id, mpath, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING `+categoryColumns,
		opts.ID, opts.Name, opts.CustomOrder, null.StringFromPtr(opts.ParentID), opts.MPath, now,
	).Bind(ctx, postgre.Executor(ctx, r.db), &row)
	if err != nil {
		r.l.Errorf(ctx, "category.repository.postgre.Create: Failed to insert category: %v", err)
		return model.Category{}, repository.ErrCreateFailed
	}

	return row.toModel(), nil
}

// Update - Update the set fields of a category.
func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) error {
	q := postgre.NewQuery(byIDs([]string{opts.ID})...)
	queries.SetUpdate(q, buildUpdateCols(opts.Name, opts.CustomOrder, opts.ParentSet, opts.ParentID))

	res, err := q.ExecContext(ctx, postgre.Executor(ctx, r.db))
	if err != nil {
		r.l.Errorf(ctx, "category.repository.postgre.Update: Failed to update category: %v", err)
		return repository.ErrUpdateFailed
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// MovePaths - Rewrite the prefix of every path under opts.OldPrefix.
func (r *implRepository) MovePaths(ctx context.Context, opts repository.MovePathsOptions) error {
	if opts.OldPrefix == "" || opts.OldPrefix == opts.NewPrefix {
		return nil
	}

	stmt := `UPDATE content_categories
		SET mpath = $1 || substr(mpath, $2), updated_at = NOW()
		WHERE mpath LIKE $3`
	args := []interface{}{opts.NewPrefix, len(opts.OldPrefix) + 1, escapeLike(opts.OldPrefix) + "%"}
	if opts.ExcludeID != "" {
		stmt += " AND id <> $4"
		args = append(args, opts.ExcludeID)
	}

	if _, err := postgre.Executor(ctx, r.db).ExecContext(ctx, stmt, args...); err != nil {
		r.l.Errorf(ctx, "category.repository.postgre.MovePaths: Failed to move paths: %v", err)
		return repository.ErrUpdateFailed
	}

	return nil
}

// ReparentChildren - Point the direct children of opts.ID at opts.ParentID.
func (r *implRepository) ReparentChildren(ctx context.Context, opts repository.ReparentChildrenOptions) error {
	_, err := postgre.Executor(ctx, r.db).ExecContext(ctx,
		`UPDATE content_categories SET parent_id = $1, updated_at = NOW() WHERE parent_id = $2`,
		null.StringFromPtr(opts.ParentID), opts.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "category.repository.postgre.ReparentChildren: Failed to reparent children: %v", err)
		return repository.ErrUpdateFailed
	}

	return nil
}

// SoftDelete - Mark categories as deleted.
func (r *implRepository) SoftDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := postgre.NewQuery(byIDs(ids)...)
	queries.SetUpdate(q, map[string]interface{}{"deleted_at": time.Now()})

	if _, err := q.ExecContext(ctx, postgre.Executor(ctx, r.db)); err != nil {
		r.l.Errorf(ctx, "category.repository.postgre.SoftDelete: Failed to soft delete categories: %v", err)
		return repository.ErrDeleteFailed
	}

	return nil
}

// HardDelete - Remove categories.
func (r *implRepository) HardDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := postgre.NewQuery(byIDs(ids)...)
	queries.SetDelete(q)

	if _, err := q.ExecContext(ctx, postgre.Executor(ctx, r.db)); err != nil {
		r.l.Errorf(ctx, "category.repository.postgre.HardDelete: Failed to delete categories: %v", err)
		return repository.ErrDeleteFailed
	}

	return nil
}

// Restore - Clear the deleted mark of categories.
func (r *implRepository) Restore(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := postgre.NewQuery(byIDs(ids)...)
	queries.SetUpdate(q, map[string]interface{}{"deleted_at": nil, "updated_at": time.Now()})

	if _, err := q.ExecContext(ctx, postgre.Executor(ctx, r.db)); err != nil {
		r.l.Errorf(ctx, "category.repository.postgre.Restore: Failed to restore categories: %v", err)
		return repository.ErrUpdateFailed
	}

	return nil
}
