package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"content-srv/internal/middleware"
	"content-srv/internal/model"
	"content-srv/internal/post"
	"content-srv/pkg/log"
	"content-srv/pkg/paginator"
	"content-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeManager struct{}

func (fakeManager) Verify(token string) (scope.Payload, error) {
	if token != "good" {
		return scope.Payload{}, errors.New("invalid token")
	}
	return scope.Payload{UserID: "u1", Role: model.RoleAdmin}, nil
}

type fakeUseCase struct {
	post.UseCase
	posts     []model.Post
	listIn    post.ListInput
	detailIn  post.DetailInput
	createIn  post.CreateInput
	updateIn  post.UpdateInput
	deleteIn  post.DeleteInput
	restoreIn []string
	err       error
}

func (f *fakeUseCase) List(_ context.Context, in post.ListInput) (post.ListOutput, error) {
	f.listIn = in
	if f.err != nil {
		return post.ListOutput{}, f.err
	}
	return paginator.ManualPaginate(in.Paginate, f.posts)
}

func (f *fakeUseCase) Detail(_ context.Context, in post.DetailInput) (model.Post, error) {
	f.detailIn = in
	return model.Post{ID: in.ID, Title: "T"}, f.err
}

func (f *fakeUseCase) Create(_ context.Context, in post.CreateInput) (model.Post, error) {
	f.createIn = in
	return model.Post{ID: "new", Title: in.Title}, f.err
}

func (f *fakeUseCase) Update(_ context.Context, in post.UpdateInput) (model.Post, error) {
	f.updateIn = in
	return model.Post{ID: in.ID}, f.err
}

func (f *fakeUseCase) Delete(_ context.Context, in post.DeleteInput) ([]model.Post, error) {
	f.deleteIn = in
	return []model.Post{{ID: in.IDs[0]}}, f.err
}

func (f *fakeUseCase) Restore(_ context.Context, ids []string) ([]model.Post, error) {
	f.restoreIn = ids
	return []model.Post{{ID: ids[0]}}, f.err
}

const (
	idA = "4f1b1d6e-68f3-4ad2-9d7a-0c7c1f3f8a11"
	idB = "9a7e34a2-3b6f-4b8c-8c1e-5d2f7e9a0b22"
)

func newRouter(t *testing.T, uc post.UseCase) *gin.Engine {
	t.Helper()
	l := log.NewNop()
	r := gin.New()
	r.Use(middleware.Recovery(l, nil))
	require.NoError(t, New(l, uc, nil).RegisterRoutes(r.Group(""), middleware.New(l, fakeManager{}, "token")))
	return r
}

func do(r *gin.Engine, method, path, body string, auth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer good")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestList(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		uc := &fakeUseCase{posts: []model.Post{
			{ID: "a", Categories: []model.Category{{ID: idA, Name: "Go"}}},
			{ID: "b"},
		}}
		r := newRouter(t, uc)

		w := do(r, http.MethodGet, "/api/v1/posts?page=1&limit=1&category="+idA+"&orderBy=custom&isPublished=true&search=go&trashed=all", "", false)
		require.Equal(t, http.StatusOK, w.Code)

		require.NotNil(t, uc.listIn.IsPublished)
		assert.True(t, *uc.listIn.IsPublished)
		assert.Equal(t, idA, uc.listIn.CategoryID)
		assert.Equal(t, model.PostOrderCustom, uc.listIn.OrderBy)
		assert.Equal(t, "go", uc.listIn.Search)
		assert.Equal(t, model.TrashAll, uc.listIn.Trashed)
		assert.Equal(t, paginator.PaginateQuery{Page: 1, Limit: 1}, uc.listIn.Paginate)

		data := decode(t, w)["data"].(map[string]any)
		items := data["items"].([]any)
		require.Len(t, items, 1)
		first := items[0].(map[string]any)
		assert.Equal(t, "a", first["id"])
		assert.Equal(t, []any{}, first["keywords"])
		assert.Equal(t, "Go", first["categories"].([]any)[0].(map[string]any)["name"])
		assert.Equal(t, float64(2), data["meta"].(map[string]any)["totalPages"])
	})

	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{name: "bad category", query: "?category=x", status: http.StatusBadRequest},
		{name: "bad published", query: "?isPublished=maybe", status: http.StatusBadRequest},
		{name: "invalid order", query: "?orderBy=title", err: post.ErrInvalidOrder, status: http.StatusBadRequest},
		{name: "unknown category", query: "?category=" + idA, err: post.ErrCategoryNotFound, status: http.StatusBadRequest},
		{name: "search failure", query: "?search=x", err: post.ErrSearchFailed, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, &fakeUseCase{err: tt.err})
			w := do(r, http.MethodGet, "/api/v1/posts"+tt.query, "", false)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestDetail(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(t, uc)

	w := do(r, http.MethodGet, "/api/v1/posts/"+idA+"?trashed=only", "", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, post.DetailInput{ID: idA, WithTrashed: true}, uc.detailIn)

	uc.err = post.ErrPostNotFound
	w = do(r, http.MethodGet, "/api/v1/posts/"+idA, "", false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStore(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		auth   bool
		err    error
		status int
	}{
		{name: "ok", body: `{"title":"Hi","type":"html","categories":["` + idA + `"],"keywords":["go"]}`, auth: true, status: http.StatusOK},
		{name: "unauthorized", body: `{"title":"Hi"}`, status: http.StatusUnauthorized},
		{name: "missing title", body: `{}`, auth: true, status: http.StatusBadRequest},
		{name: "bad type", body: `{"title":"Hi","type":"pdf"}`, auth: true, status: http.StatusBadRequest},
		{name: "bad category id", body: `{"title":"Hi","categories":["x"]}`, auth: true, status: http.StatusBadRequest},
		{name: "index failure", body: `{"title":"Hi"}`, auth: true, err: post.ErrIndexFailed, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			r := newRouter(t, uc)

			w := do(r, http.MethodPost, "/api/v1/posts", tt.body, tt.auth)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "Hi", uc.createIn.Title)
				assert.Equal(t, model.PostTypeHTML, uc.createIn.Type)
				assert.Equal(t, []string{idA}, uc.createIn.CategoryIDs)
				assert.Equal(t, []string{"go"}, uc.createIn.Keywords)
			}
		})
	}
}

func TestUpdate_OptionalFields(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		publishedSet  bool
		published     bool
		categoriesSet bool
		categories    []string
		keywordsSet   bool
	}{
		{name: "nothing", body: `{}`},
		{name: "unpublish", body: `{"published_at":null}`, publishedSet: true},
		{name: "publish", body: `{"published_at":"2026-01-02T03:04:05Z"}`, publishedSet: true, published: true},
		{name: "clear categories", body: `{"categories":[]}`, categoriesSet: true, categories: []string{}},
		{name: "set categories", body: `{"categories":["` + idB + `"],"keywords":[]}`, categoriesSet: true, categories: []string{idB}, keywordsSet: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			r := newRouter(t, uc)

			w := do(r, http.MethodPatch, "/api/v1/posts/"+idA, tt.body, true)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, idA, uc.updateIn.ID)
			assert.Equal(t, tt.publishedSet, uc.updateIn.PublishedSet)
			assert.Equal(t, tt.published, uc.updateIn.PublishedAt != nil)
			assert.Equal(t, tt.categoriesSet, uc.updateIn.CategoriesSet)
			assert.Equal(t, tt.categories, uc.updateIn.CategoryIDs)
			assert.Equal(t, tt.keywordsSet, uc.updateIn.KeywordsSet)
		})
	}

	t.Run("not found", func(t *testing.T) {
		r := newRouter(t, &fakeUseCase{err: post.ErrPostNotFound})
		w := do(r, http.MethodPatch, "/api/v1/posts/"+idA, `{"title":"x"}`, true)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteAndRestore(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(t, uc)

	w := do(r, http.MethodDelete, "/api/v1/posts", `{"ids":["`+idA+`"],"trash":true}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, post.DeleteInput{IDs: []string{idA}, Trash: true}, uc.deleteIn)

	w = do(r, http.MethodDelete, "/api/v1/posts", `{"ids":["x"]}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/posts/restore", `{"ids":["`+idB+`"]}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{idB}, uc.restoreIn)

	w = do(r, http.MethodPost, "/api/v1/posts/restore", `{"ids":["`+idB+`"]}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
