package voyage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "content-srv/pkg/http"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *voyageImpl {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return newVoyage(
		VoyageConfig{APIKey: "key", Endpoint: srv.URL},
		pkghttp.NewClient(pkghttp.ClientConfig{Timeout: time.Second, Retries: 0}),
	)
}

func TestEmbed(t *testing.T) {
	t.Run("orders by index", func(t *testing.T) {
		v := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
			var req Request
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, Model, req.Model)
			assert.Equal(t, InputTypeQuery, req.InputType)
			assert.Equal(t, []string{"a", "b"}, req.Input)

			_ = json.NewEncoder(w).Encode(Response{Data: []Embedding{
				{Index: 1, Embedding: []float32{2}},
				{Index: 0, Embedding: []float32{1}},
			}})
		})

		got, err := v.Embed(context.Background(), []string{"a", "b"}, InputTypeQuery)
		require.NoError(t, err)
		assert.Equal(t, [][]float32{{1}, {2}}, got)
	})

	t.Run("non 200", func(t *testing.T) {
		v := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := v.Embed(context.Background(), []string{"a"}, InputTypeDocument)
		assert.Error(t, err)
	})

	t.Run("count mismatch", func(t *testing.T) {
		v := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(Response{})
		})

		_, err := v.Embed(context.Background(), []string{"a"}, InputTypeDocument)
		assert.Error(t, err)
	})
}

func TestEmbed_Guards(t *testing.T) {
	v := newVoyage(VoyageConfig{}, nil)
	_, err := v.Embed(context.Background(), []string{"a"}, InputTypeQuery)
	assert.Equal(t, ErrAPIKeyRequired, err)

	v = newVoyage(VoyageConfig{APIKey: "k"}, nil)
	_, err = v.Embed(context.Background(), nil, InputTypeQuery)
	assert.Equal(t, ErrEmptyInput, err)
	assert.Equal(t, Endpoint, v.endpoint)
}
