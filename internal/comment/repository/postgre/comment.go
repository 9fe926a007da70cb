package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/lib/pq"
	"github.com/volatiletech/sqlboiler/v4/queries"

	"content-srv/internal/comment/repository"
	"content-srv/internal/model"
	"content-srv/pkg/postgre"
)

// List - List comments, optionally of one post.
func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Comment, error) {
	var rows []commentRow
	q := postgre.NewQuery(r.buildListQuery(opts)...)
	if err := q.Bind(ctx, postgre.Executor(ctx, r.db), &rows); err != nil {
		r.l.Errorf(ctx, "comment.repository.postgre.List: Failed to list comments: %v", err)
		return nil, err
	}

	return toModels(rows), nil
}

// Detail - Get comment by id.
func (r *implRepository) Detail(ctx context.Context, id string) (model.Comment, error) {
	var row commentRow
	q := postgre.NewQuery(r.buildDetailQuery(id)...)
	if err := q.Bind(ctx, postgre.Executor(ctx, r.db), &row); err != nil {
		err = postgre.MapError(err)
		if errors.Is(err, postgre.ErrNotFound) || errors.Is(err, postgre.ErrInvalidText) {
			return model.Comment{}, repository.ErrCommentNotFound
		}
		r.l.Errorf(ctx, "comment.repository.postgre.Detail: Failed to get comment: %v", err)
		return model.Comment{}, err
	}

	return row.toModel(), nil
}

// FindByIDs - Get comments by ids. Unknown ids are skipped.
func (r *implRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Comment, error) {
	if len(ids) == 0 {
		return []model.Comment{}, nil
	}

	var rows []commentRow
	q := postgre.NewQuery(r.buildFindByIDsQuery(ids)...)
	if err := q.Bind(ctx, postgre.Executor(ctx, r.db), &rows); err != nil {
		if errors.Is(postgre.MapError(err), postgre.ErrInvalidText) {
			return []model.Comment{}, nil
		}
		r.l.Errorf(ctx, "comment.repository.postgre.FindByIDs: Failed to find comments: %v", err)
		return nil, err
	}

	return toModels(rows), nil
}

// Create - Insert a new comment.
func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Comment, error) {
	var row commentRow
	err := queries.Raw(
		`INSERT INTO content_comments (id, body, post_id, parent_id, mpath, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+commentColumns,
		opts.ID, opts.Body, opts.PostID, null.StringFromPtr(opts.ParentID), opts.MPath, opts.AuthorID, time.Now(),
	).Bind(ctx, postgre.Executor(ctx, r.db), &row)
	if err != nil {
		r.l.Errorf(ctx, "comment.repository.postgre.Create: Failed to insert comment: %v", err)
		return model.Comment{}, repository.ErrCreateFailed
	}

	return row.toModel(), nil
}

// DeleteSubtrees - Remove comments and their replies by path prefix.
func (r *implRepository) DeleteSubtrees(ctx context.Context, mpaths []string) error {
	patterns := subtreePatterns(mpaths)
	if len(patterns) == 0 {
		return nil
	}

	_, err := postgre.Executor(ctx, r.db).ExecContext(ctx,
		`DELETE FROM content_comments WHERE mpath LIKE ANY($1::text[])`,
		pq.Array(patterns),
	)
	if err != nil {
		r.l.Errorf(ctx, "comment.repository.postgre.DeleteSubtrees: Failed to delete comments: %v", err)
		return repository.ErrDeleteFailed
	}

	return nil
}
