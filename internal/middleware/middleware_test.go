package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"content-srv/pkg/locale"
	"content-srv/pkg/log"
	"content-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeManager struct {
	token   string
	payload scope.Payload
}

func (f fakeManager) Verify(token string) (scope.Payload, error) {
	if token != f.token {
		return scope.Payload{}, errors.New("invalid token")
	}
	return f.payload, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuth(t *testing.T) {
	m := New(log.NewNop(), fakeManager{token: "good", payload: scope.Payload{UserID: "u1", Role: "admin"}}, "content_token")

	var gotUser string
	r := gin.New()
	r.GET("/", m.Auth(), func(c *gin.Context) {
		gotUser = scope.GetScopeFromContext(c.Request.Context()).UserID
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name     string
		header   string
		cookie   string
		wantCode int
		wantUser string
	}{
		{name: "bearer header", header: "Bearer good", wantCode: http.StatusOK, wantUser: "u1"},
		{name: "raw header", header: "good", wantCode: http.StatusOK, wantUser: "u1"},
		{name: "cookie", cookie: "good", wantCode: http.StatusOK, wantUser: "u1"},
		{name: "bad token", header: "Bearer bad", wantCode: http.StatusUnauthorized},
		{name: "missing", wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser = ""
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "content_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantUser, gotUser)
		})
	}
}

func TestRequestID(t *testing.T) {
	m := New(log.NewNop(), fakeManager{}, "")

	var gotID string
	r := gin.New()
	r.GET("/", m.RequestID(), func(c *gin.Context) {
		gotID = log.GetRequestIDFromContext(c.Request.Context())
	})

	t.Run("reuses header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc", gotID)
		assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
	})

	t.Run("generates", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, gotID)
		assert.Equal(t, gotID, w.Header().Get(RequestIDHeader))
	})
}

func TestLocale(t *testing.T) {
	m := New(log.NewNop(), fakeManager{}, "")

	var gotLang string
	r := gin.New()
	r.GET("/", m.Locale(), func(c *gin.Context) {
		gotLang = locale.GetLang(c.Request.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "vi-VN,vi;q=0.9")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, locale.VI, gotLang)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://blog.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://blog.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "https://blog.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://blog.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(log.NewNop(), nil))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
