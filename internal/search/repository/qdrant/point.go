package qdrant

import (
	"context"

	"content-srv/internal/search/repository"
	pkgQdrant "content-srv/pkg/qdrant"
)

// EnsureCollection - Create the collection when it does not exist.
func (r *implRepository) EnsureCollection(ctx context.Context, opts repository.EnsureCollectionOptions) error {
	exists, err := r.client.CollectionExists(ctx, r.collection)
	if err != nil {
		r.l.Errorf(ctx, "search.repository.qdrant.EnsureCollection: Failed to check collection: %v", err)
		return err
	}
	if exists {
		return nil
	}

	if err := r.client.CreateCollection(ctx, r.collection, opts.VectorSize, pkgQdrant.GetDistanceMetric(opts.Distance)); err != nil {
		r.l.Errorf(ctx, "search.repository.qdrant.EnsureCollection: Failed to create collection: %v", err)
		return err
	}

	r.l.Infof(ctx, "search.repository.qdrant.EnsureCollection: Created collection %s", r.collection)
	return nil
}

// Upsert - Insert or replace one point.
func (r *implRepository) Upsert(ctx context.Context, opts repository.UpsertOptions) error {
	if err := r.client.UpsertPoints(ctx, r.collection, []pkgQdrant.Point{buildPoint(opts)}); err != nil {
		r.l.Errorf(ctx, "search.repository.qdrant.Upsert: Failed to upsert point: %v", err)
		return repository.ErrUpsertFailed
	}
	return nil
}

// Delete - Delete points by id.
func (r *implRepository) Delete(ctx context.Context, ids []string) error {
	if err := r.client.DeletePoints(ctx, r.collection, ids); err != nil {
		r.l.Errorf(ctx, "search.repository.qdrant.Delete: Failed to delete points: %v", err)
		return repository.ErrDeleteFailed
	}
	return nil
}

// Search - Vector search, best first.
func (r *implRepository) Search(ctx context.Context, opts repository.SearchOptions) ([]repository.ScoredPoint, error) {
	results, err := r.client.Search(ctx, r.collection, opts.Vector, opts.Limit, buildFilter(opts))
	if err != nil {
		r.l.Errorf(ctx, "search.repository.qdrant.Search: Failed to search points: %v", err)
		return nil, repository.ErrSearchFailed
	}

	points := make([]repository.ScoredPoint, 0, len(results))
	for _, res := range results {
		points = append(points, repository.ScoredPoint{ID: postID(res), Score: res.Score})
	}
	return points, nil
}
