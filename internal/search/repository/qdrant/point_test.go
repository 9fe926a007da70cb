package qdrant

import (
	"context"
	"errors"
	"testing"

	pb "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-srv/internal/search/repository"
	"content-srv/pkg/log"
	pkgQdrant "content-srv/pkg/qdrant"
)

type fakeClient struct {
	pkgQdrant.IQdrant
	exists   bool
	created  bool
	distance pb.Distance
	upserted []pkgQdrant.Point
	filter   *pb.Filter
	results  []pkgQdrant.SearchResult
	err      error
}

func (f *fakeClient) CollectionExists(context.Context, string) (bool, error) {
	return f.exists, f.err
}

func (f *fakeClient) CreateCollection(_ context.Context, _ string, _ uint64, d pb.Distance) error {
	f.created = true
	f.distance = d
	return f.err
}

func (f *fakeClient) UpsertPoints(_ context.Context, _ string, points []pkgQdrant.Point) error {
	f.upserted = points
	return f.err
}

func (f *fakeClient) DeletePoints(context.Context, string, []string) error {
	return f.err
}

func (f *fakeClient) Search(_ context.Context, _ string, _ []float32, _ uint64, filter *pb.Filter) ([]pkgQdrant.SearchResult, error) {
	f.filter = filter
	return f.results, f.err
}

func TestEnsureCollection(t *testing.T) {
	t.Run("creates missing", func(t *testing.T) {
		c := &fakeClient{}
		r := New(c, "posts", log.NewNop())
		require.NoError(t, r.EnsureCollection(context.Background(), repository.EnsureCollectionOptions{VectorSize: 4, Distance: "cosine"}))
		assert.True(t, c.created)
		assert.Equal(t, pb.Distance_Cosine, c.distance)
	})

	t.Run("keeps existing", func(t *testing.T) {
		c := &fakeClient{exists: true}
		r := New(c, "posts", log.NewNop())
		require.NoError(t, r.EnsureCollection(context.Background(), repository.EnsureCollectionOptions{VectorSize: 4}))
		assert.False(t, c.created)
	})
}

func TestUpsert(t *testing.T) {
	c := &fakeClient{}
	r := New(c, "posts", log.NewNop())

	err := r.Upsert(context.Background(), repository.UpsertOptions{
		ID:      "p1",
		Vector:  []float32{1},
		Payload: repository.PostPayload{PostID: "p1", Title: "T", Published: true},
	})
	require.NoError(t, err)
	require.Len(t, c.upserted, 1)
	assert.Equal(t, "T", c.upserted[0].Payload["title"])
	assert.Equal(t, true, c.upserted[0].Payload["published"])

	c.err = errors.New("down")
	assert.ErrorIs(t, r.Upsert(context.Background(), repository.UpsertOptions{ID: "p1"}), repository.ErrUpsertFailed)
}

func TestSearch(t *testing.T) {
	c := &fakeClient{results: []pkgQdrant.SearchResult{
		{ID: "x", Score: 0.9, Payload: map[string]interface{}{"post_id": "p1"}},
		{ID: "p2", Score: 0.5},
	}}
	r := New(c, "posts", log.NewNop())

	points, err := r.Search(context.Background(), repository.SearchOptions{Vector: []float32{1}, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, []repository.ScoredPoint{{ID: "p1", Score: 0.9}, {ID: "p2", Score: 0.5}}, points)
	assert.Nil(t, c.filter)

	_, err = r.Search(context.Background(), repository.SearchOptions{Vector: []float32{1}, PublishedOnly: true})
	require.NoError(t, err)
	require.NotNil(t, c.filter)
	assert.Len(t, c.filter.Must, 1)
}
