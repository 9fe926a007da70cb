package crud

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"content-srv/internal/model"
	pkgErrors "content-srv/pkg/errors"
	"content-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type readOnly struct{}

func (readOnly) List(c *gin.Context)   { c.String(http.StatusOK, "list") }
func (readOnly) Detail(c *gin.Context) { c.String(http.StatusOK, "detail "+c.Param("id")) }

type full struct{ readOnly }

func (full) Store(c *gin.Context)   { c.String(http.StatusOK, "store") }
func (full) Update(c *gin.Context)  { c.String(http.StatusOK, "update") }
func (full) Delete(c *gin.Context)  { c.String(http.StatusOK, "delete") }
func (full) Restore(c *gin.Context) { c.String(http.StatusOK, "restore") }

func denyAll(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRegister(t *testing.T) {
	t.Run("all capabilities", func(t *testing.T) {
		r := gin.New()
		require.NoError(t, Register(r.Group("/posts"), full{}, All, denyAll))

		assert.Equal(t, "list", serve(r, http.MethodGet, "/posts").Body.String())
		assert.Equal(t, "detail 42", serve(r, http.MethodGet, "/posts/42").Body.String())
		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/posts").Code)
		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPatch, "/posts/42").Code)
		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodDelete, "/posts").Code)
		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/posts/restore").Code)
	})

	t.Run("write routes without auth", func(t *testing.T) {
		r := gin.New()
		require.NoError(t, Register(r.Group("/posts"), full{}, All, nil))

		assert.Equal(t, "store", serve(r, http.MethodPost, "/posts").Body.String())
		assert.Equal(t, "restore", serve(r, http.MethodPost, "/posts/restore").Body.String())
	})

	t.Run("subset", func(t *testing.T) {
		r := gin.New()
		require.NoError(t, Register(r.Group("/comments"), full{}, []Capability{CapList, CapDelete}, nil))

		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/comments").Code)
		assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/comments/1").Code)
		assert.Equal(t, http.StatusNotFound, serve(r, http.MethodPost, "/comments/restore").Code)
	})

	t.Run("missing capability mounts nothing", func(t *testing.T) {
		r := gin.New()
		err := Register(r.Group("/x"), readOnly{}, []Capability{CapList, CapStore}, nil)

		assert.True(t, errors.Is(err, ErrCapabilityMissing))
		assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/x").Code)
	})

	t.Run("unknown capability", func(t *testing.T) {
		r := gin.New()
		err := Register(r.Group("/x"), full{}, []Capability{"export"}, nil)
		assert.True(t, errors.Is(err, ErrUnknownCapability))
	})
}

func TestBindPage(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    paginator.PaginateQuery
		wantErr bool
	}{
		{name: "defaults", query: "", want: paginator.PaginateQuery{Page: 1, Limit: 15}},
		{name: "explicit", query: "?page=3&limit=20", want: paginator.PaginateQuery{Page: 3, Limit: 20}},
		{name: "zero passes through", query: "?page=0", want: paginator.PaginateQuery{Page: 0, Limit: 15}},
		{name: "over max", query: "?limit=101", wantErr: true},
		{name: "not a number", query: "?page=abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)

			got, err := BindPage(c)
			if tt.wantErr {
				var verr *pkgErrors.ValidationError
				assert.True(t, errors.As(err, &verr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBindTrashed(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?trashed=only", nil)
	mode, err := BindTrashed(c)
	require.NoError(t, err)
	assert.Equal(t, model.TrashOnly, mode)

	c.Request = httptest.NewRequest(http.MethodGet, "/?trashed=bogus", nil)
	_, err = BindTrashed(c)
	assert.Error(t, err)
}

func TestBindError_Validator(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(`{"ids":[]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req DeleteReq
	err := BindError(c.ShouldBindJSON(&req))

	var verr *pkgErrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "ids", verr.Fields[0].Field)
}
