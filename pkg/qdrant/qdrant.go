package qdrant

import (
	"context"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
)

func (c *qdrantImpl) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Ping checks if Qdrant is reachable.
func (c *qdrantImpl) Ping(ctx context.Context) error {
	if _, err := c.collectionsClient.List(ctx, &pb.ListCollectionsRequest{}); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

func (c *qdrantImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || c.defaultTimeout == 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.defaultTimeout)
}

func (c *qdrantImpl) CreateCollection(ctx context.Context, name string, vectorSize uint64, distance pb.Distance) error {
	if name == "" {
		return ErrEmptyCollection
	}
	if vectorSize == 0 {
		return ErrInvalidVectorSize
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.collectionsClient.Create(ctx, &pb.CreateCollection{
		CollectionName: name,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{Size: vectorSize, Distance: distance},
			},
		},
	})
	return WrapError(err, "failed to create collection")
}

func (c *qdrantImpl) CollectionExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.collectionsClient.CollectionExists(ctx, &pb.CollectionExistsRequest{CollectionName: name})
	if err != nil {
		return false, WrapError(err, "failed to check collection")
	}
	return resp.GetResult().GetExists(), nil
}

func (c *qdrantImpl) UpsertPoints(ctx context.Context, colName string, points []Point) error {
	if colName == "" {
		return ErrEmptyCollection
	}
	if len(points) == 0 {
		return nil
	}
	structs, err := toPointStructs(points)
	if err != nil {
		return err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	wait := true
	_, err = c.pointsClient.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: colName,
		Wait:           &wait,
		Points:         structs,
	})
	return WrapError(err, "failed to upsert points")
}

func (c *qdrantImpl) DeletePoints(ctx context.Context, colName string, ids []string) error {
	if colName == "" {
		return ErrEmptyCollection
	}
	if len(ids) == 0 {
		return nil
	}
	pointIDs := make([]*pb.PointId, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			return ErrInvalidPointID
		}
		pointIDs = append(pointIDs, uuidPointID(id))
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.pointsClient.Delete(ctx, &pb.DeletePoints{
		CollectionName: colName,
		Points: &pb.PointsSelector{
			PointsSelectorOneOf: &pb.PointsSelector_Points{
				Points: &pb.PointsIdsList{Ids: pointIDs},
			},
		},
	})
	return WrapError(err, "failed to delete points")
}

func (c *qdrantImpl) Search(ctx context.Context, colName string, vector []float32, limit uint64, filter *pb.Filter) ([]SearchResult, error) {
	if colName == "" {
		return nil, ErrEmptyCollection
	}
	if len(vector) == 0 {
		return nil, ErrInvalidVector
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.pointsClient.Search(ctx, &pb.SearchPoints{
		CollectionName: colName,
		Vector:         vector,
		Limit:          limit,
		Filter:         filter,
		WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
	})
	if err != nil {
		return nil, WrapError(err, "failed to search")
	}
	return searchResultsFromHits(resp.GetResult()), nil
}
