package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"content-srv/config"
	"content-srv/pkg/log"
	pkgRedis "content-srv/pkg/redis"
	"content-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct{}

func (fakeManager) Verify(string) (scope.Payload, error) {
	return scope.Payload{}, errors.New("invalid token")
}

type fakeRedis struct {
	pkgRedis.IRedis
}

func (fakeRedis) Ping(context.Context) error { return nil }

func (fakeRedis) Get(context.Context, string) (string, error) { return "", nil }

func (fakeRedis) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func validConfig() Config {
	return Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        gin.TestMode,
		PostgresDB:  new(sql.DB),
		RedisClient: fakeRedis{},
		JWTManager:  fakeManager{},
		SearchConfig: config.SearchConfig{
			Type: config.SearchTypeLike,
		},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "no logger", mutate: func(c *Config) { c.Logger = nil }, wantErr: "logger is required"},
		{name: "no port", mutate: func(c *Config) { c.Port = 0 }, wantErr: "port is required"},
		{name: "no db", mutate: func(c *Config) { c.PostgresDB = nil }, wantErr: "postgresDB is required"},
		{name: "no jwt", mutate: func(c *Config) { c.JWTManager = nil }, wantErr: "jwtManager is required"},
		{
			name:    "vector without qdrant",
			mutate:  func(c *Config) { c.SearchConfig.Type = config.SearchTypeVector },
			wantErr: "qdrantClient is required for vector search",
		},
		{
			name:    "async without producer",
			mutate:  func(c *Config) { c.SearchConfig.Async = true },
			wantErr: "kafkaProducer is required for async indexing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			srv, err := New(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestMapHandlers(t *testing.T) {
	srv, err := New(validConfig())
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())

	routes := map[string]bool{}
	for _, r := range srv.gin.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"GET /ready",
		"GET /live",
		"GET /swagger/*any",
		"GET /api/v1/categories/tree",
		"GET /api/v1/categories",
		"POST /api/v1/categories",
		"GET /api/v1/posts",
		"GET /api/v1/posts/:id",
		"POST /api/v1/posts",
		"GET /api/v1/comments/tree",
		"POST /api/v1/comments",
	} {
		assert.True(t, routes[want], want)
	}

	t.Run("live", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), ServiceName)
	})

	t.Run("write route requires auth", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/posts", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPostIndexer(t *testing.T) {
	srv, err := New(validConfig())
	require.NoError(t, err)
	assert.Nil(t, srv.postIndexer(context.Background(), nil))
}
