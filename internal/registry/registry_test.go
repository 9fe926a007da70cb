package registry

import (
	"database/sql"
	"errors"
	"testing"

	"content-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter interface {
	Greet() string
}

type english struct{}

func (english) Greet() string { return "hello" }

type counter interface {
	Count() int
}

func TestRegistry(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(KindPost, func(db *sql.DB, l log.Logger) any { return english{} }))

	t.Run("resolve", func(t *testing.T) {
		g, err := Resolve[greeter](r, KindPost, nil, log.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "hello", g.Greet())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Resolve[greeter](r, KindComment, nil, log.NewNop())
		assert.True(t, errors.Is(err, ErrUnknownKind))
	})

	t.Run("mismatch", func(t *testing.T) {
		_, err := Resolve[counter](r, KindPost, nil, log.NewNop())
		assert.True(t, errors.Is(err, ErrKindMismatch))
	})

	t.Run("duplicate", func(t *testing.T) {
		err := r.Register(KindPost, func(db *sql.DB, l log.Logger) any { return english{} })
		assert.True(t, errors.Is(err, ErrDuplicateKind))
	})

	t.Run("nil constructor", func(t *testing.T) {
		assert.True(t, errors.Is(r.Register(KindCategory, nil), ErrNilConstructor))
	})

	t.Run("kinds", func(t *testing.T) {
		require.NoError(t, r.Register(KindComment, func(db *sql.DB, l log.Logger) any { return english{} }))
		assert.Equal(t, []Kind{KindComment, KindPost}, r.Kinds())
	})
}
