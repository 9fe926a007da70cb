package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-srv/internal/model"
	"content-srv/internal/search"
	"content-srv/internal/search/repository"
	"content-srv/pkg/log"
	"content-srv/pkg/voyage"
)

type fakeVoyage struct {
	calls     int
	inputType string
	err       error
}

func (f *fakeVoyage) Embed(_ context.Context, texts []string, inputType string) ([][]float32, error) {
	f.calls++
	f.inputType = inputType
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = []float32{float32(len(t))}
	}
	return out, nil
}

type fakePoints struct {
	upserted []repository.UpsertOptions
	deleted  []string
	results  []repository.ScoredPoint
	searched repository.SearchOptions
	ensured  *repository.EnsureCollectionOptions
	err      error
}

func (f *fakePoints) EnsureCollection(_ context.Context, opts repository.EnsureCollectionOptions) error {
	f.ensured = &opts
	return f.err
}

func (f *fakePoints) Upsert(_ context.Context, opts repository.UpsertOptions) error {
	f.upserted = append(f.upserted, opts)
	return f.err
}

func (f *fakePoints) Delete(_ context.Context, ids []string) error {
	f.deleted = append(f.deleted, ids...)
	return f.err
}

func (f *fakePoints) Search(_ context.Context, opts repository.SearchOptions) ([]repository.ScoredPoint, error) {
	f.searched = opts
	return f.results, f.err
}

type fakeCache struct {
	data  map[string][]float32
	saved int
	ttl   time.Duration
	err   error
}

func (f *fakeCache) Get(_ context.Context, text string) ([]float32, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	v, ok := f.data[text]
	return v, ok, nil
}

func (f *fakeCache) Save(_ context.Context, text string, vector []float32, ttl time.Duration) error {
	f.saved++
	f.ttl = ttl
	f.data[text] = vector
	return nil
}

func newTestUC(points *fakePoints, cache *fakeCache, v *fakeVoyage) search.UseCase {
	return New(log.NewNop(), points, cache, v, search.Config{
		Collection: "posts",
		VectorSize: 1024,
		Distance:   "cosine",
		CacheTTL:   time.Hour,
		Limit:      50,
	})
}

func TestIndex(t *testing.T) {
	points := &fakePoints{}
	v := &fakeVoyage{}
	uc := newTestUC(points, &fakeCache{data: map[string][]float32{}}, v)

	published := time.Now()
	err := uc.Index(context.Background(), search.IndexInput{Post: model.Post{
		ID:          "p1",
		Title:       "Title",
		Body:        "Body",
		PublishedAt: &published,
		Categories:  []model.Category{{Name: "Go"}},
	}})
	require.NoError(t, err)

	assert.Equal(t, voyage.InputTypeDocument, v.inputType)
	require.Len(t, points.upserted, 1)
	assert.Equal(t, "p1", points.upserted[0].ID)
	assert.Equal(t, repository.PostPayload{PostID: "p1", Title: "Title", Published: true}, points.upserted[0].Payload)
}

func TestIndex_Errors(t *testing.T) {
	t.Run("embedding", func(t *testing.T) {
		uc := newTestUC(&fakePoints{}, &fakeCache{data: map[string][]float32{}}, &fakeVoyage{err: errors.New("quota")})
		err := uc.Index(context.Background(), search.IndexInput{Post: model.Post{ID: "p1"}})
		assert.ErrorIs(t, err, search.ErrEmbeddingFailed)
	})

	t.Run("upsert", func(t *testing.T) {
		uc := newTestUC(&fakePoints{err: errors.New("down")}, &fakeCache{data: map[string][]float32{}}, &fakeVoyage{})
		err := uc.Index(context.Background(), search.IndexInput{Post: model.Post{ID: "p1"}})
		assert.ErrorIs(t, err, search.ErrIndexFailed)
	})
}

func TestDocumentText(t *testing.T) {
	text := documentText(model.Post{
		Title:      "T",
		Summary:    " ",
		Body:       "B",
		Categories: []model.Category{{Name: "a"}, {Name: "b"}},
	})
	assert.Equal(t, "T\n\nB\n\na, b", text)
}

func TestRemove(t *testing.T) {
	points := &fakePoints{}
	uc := newTestUC(points, &fakeCache{data: map[string][]float32{}}, &fakeVoyage{})

	require.NoError(t, uc.Remove(context.Background(), nil))
	assert.Empty(t, points.deleted)

	require.NoError(t, uc.Remove(context.Background(), []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, points.deleted)
}

func TestSearch(t *testing.T) {
	t.Run("caches query vector", func(t *testing.T) {
		points := &fakePoints{results: []repository.ScoredPoint{{ID: "b", Score: 0.9}, {ID: "a", Score: 0.5}, {ID: "b", Score: 0.4}}}
		cache := &fakeCache{data: map[string][]float32{}}
		v := &fakeVoyage{}
		uc := newTestUC(points, cache, v)

		hits, err := uc.Search(context.Background(), search.SearchInput{Text: "golang"})
		require.NoError(t, err)
		assert.Equal(t, []search.Hit{{ID: "b", Score: 0.9}, {ID: "a", Score: 0.5}}, hits)
		assert.Equal(t, voyage.InputTypeQuery, v.inputType)
		assert.Equal(t, uint64(50), points.searched.Limit)
		assert.Equal(t, 1, cache.saved)
		assert.Equal(t, time.Hour, cache.ttl)

		_, err = uc.Search(context.Background(), search.SearchInput{Text: "golang", Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, 1, v.calls)
		assert.Equal(t, uint64(5), points.searched.Limit)
	})

	t.Run("cache error falls back", func(t *testing.T) {
		v := &fakeVoyage{}
		uc := newTestUC(&fakePoints{}, &fakeCache{data: map[string][]float32{}, err: errors.New("down")}, v)

		_, err := uc.Search(context.Background(), search.SearchInput{Text: "go"})
		require.NoError(t, err)
		assert.Equal(t, 1, v.calls)
	})

	t.Run("errors", func(t *testing.T) {
		uc := newTestUC(&fakePoints{}, &fakeCache{data: map[string][]float32{}}, &fakeVoyage{})
		_, err := uc.Search(context.Background(), search.SearchInput{Text: "  "})
		assert.ErrorIs(t, err, search.ErrEmptyQuery)

		uc = newTestUC(&fakePoints{err: errors.New("down")}, &fakeCache{data: map[string][]float32{}}, &fakeVoyage{})
		_, err = uc.Search(context.Background(), search.SearchInput{Text: "go"})
		assert.ErrorIs(t, err, search.ErrSearchFailed)
	})
}

func TestEnsureCollection(t *testing.T) {
	points := &fakePoints{}
	uc := newTestUC(points, &fakeCache{data: map[string][]float32{}}, &fakeVoyage{})

	require.NoError(t, uc.EnsureCollection(context.Background()))
	require.NotNil(t, points.ensured)
	assert.Equal(t, repository.EnsureCollectionOptions{VectorSize: 1024, Distance: "cosine"}, *points.ensured)
}
