package qdrant

import (
	"context"
	"errors"
	"testing"

	pb "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQdrantConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     QdrantConfig
		wantErr bool
	}{
		{name: "ok", cfg: QdrantConfig{Host: "localhost", Port: 6334}},
		{name: "no host", cfg: QdrantConfig{Port: 6334}, wantErr: true},
		{name: "bad port", cfg: QdrantConfig{Host: "localhost", Port: 0}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetDistanceMetric(t *testing.T) {
	assert.Equal(t, pb.Distance_Cosine, GetDistanceMetric(DistanceCosine))
	assert.Equal(t, pb.Distance_Euclid, GetDistanceMetric(DistanceEuclidean))
	assert.Equal(t, pb.Distance_Dot, GetDistanceMetric(DistanceDot))
	assert.Equal(t, pb.Distance_Cosine, GetDistanceMetric("unknown"))
}

func TestToPointStructs(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		got, err := toPointStructs([]Point{{
			ID:      "2f7d0b43-6c8b-4a53-9b43-5b2a25c3f0a1",
			Vector:  []float32{0.1, 0.2},
			Payload: map[string]interface{}{"title": "hello", "published": true},
		}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "2f7d0b43-6c8b-4a53-9b43-5b2a25c3f0a1", got[0].GetId().GetUuid())
		assert.Equal(t, "hello", got[0].GetPayload()["title"].GetStringValue())
		assert.True(t, got[0].GetPayload()["published"].GetBoolValue())
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := toPointStructs([]Point{{Vector: []float32{1}}})
		assert.Equal(t, ErrInvalidPointID, err)
	})

	t.Run("empty vector", func(t *testing.T) {
		_, err := toPointStructs([]Point{{ID: "x"}})
		assert.Equal(t, ErrInvalidVector, err)
	})
}

func TestSearchResultsFromHits(t *testing.T) {
	hits := []*pb.ScoredPoint{{
		Id:    uuidPointID("a"),
		Score: 0.9,
		Payload: map[string]*pb.Value{
			"title": {Kind: &pb.Value_StringValue{StringValue: "t"}},
			"n":     {Kind: &pb.Value_IntegerValue{IntegerValue: 3}},
			"tags": {Kind: &pb.Value_ListValue{ListValue: &pb.ListValue{Values: []*pb.Value{
				{Kind: &pb.Value_StringValue{StringValue: "go"}},
			}}}},
		},
	}}

	got := searchResultsFromHits(hits)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, float32(0.9), got[0].Score)
	assert.Equal(t, "t", got[0].Payload["title"])
	assert.Equal(t, int64(3), got[0].Payload["n"])
	assert.Equal(t, []interface{}{"go"}, got[0].Payload["tags"])
}

func TestNewQdrant_InvalidConfig(t *testing.T) {
	c, err := NewQdrant(context.Background(), QdrantConfig{})
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestQdrantImpl_Guards(t *testing.T) {
	c := &qdrantImpl{}
	ctx := context.Background()

	assert.Equal(t, ErrEmptyCollection, c.UpsertPoints(ctx, "", nil))
	assert.NoError(t, c.UpsertPoints(ctx, "posts", nil))
	assert.NoError(t, c.DeletePoints(ctx, "posts", nil))
	assert.Equal(t, ErrInvalidPointID, c.DeletePoints(ctx, "posts", []string{""}))
	_, err := c.Search(ctx, "posts", nil, 1, nil)
	assert.Equal(t, ErrInvalidVector, err)
	assert.Equal(t, ErrInvalidVectorSize, c.CreateCollection(ctx, "posts", 0, pb.Distance_Cosine))
}
