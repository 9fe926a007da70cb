package registry

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"

	"content-srv/pkg/log"
)

// Kind identifies a repository constructor.
type Kind string

const (
	KindCategory Kind = "category"
	KindPost     Kind = "post"
	KindComment  Kind = "comment"
)

var (
	ErrUnknownKind    = errors.New("registry: unknown repository kind")
	ErrKindMismatch   = errors.New("registry: repository kind has a different type")
	ErrDuplicateKind  = errors.New("registry: repository kind already registered")
	ErrNilConstructor = errors.New("registry: constructor is nil")
)

// Constructor builds a repository from the shared pool.
type Constructor func(db *sql.DB, l log.Logger) any

// Registry maps repository kinds to constructors. It is filled at startup.
type Registry struct {
	mu    sync.RWMutex
	ctors map[Kind]Constructor
}

func New() *Registry {
	return &Registry{ctors: make(map[Kind]Constructor)}
}

// Register adds a constructor for kind.
func (r *Registry) Register(kind Kind, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("%w: %s", ErrNilConstructor, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ctors[kind]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, kind)
	}
	r.ctors[kind] = ctor
	return nil
}

// Kinds returns the registered kinds in name order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.ctors))
	for k := range r.ctors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (r *Registry) constructor(kind Kind) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.ctors[kind]
	return ctor, ok
}

// Resolve builds the repository registered for kind and asserts it to T.
func Resolve[T any](r *Registry, kind Kind, db *sql.DB, l log.Logger) (T, error) {
	var zero T

	ctor, ok := r.constructor(kind)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	repo, ok := ctor(db, l).(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is not %T", ErrKindMismatch, kind, (*T)(nil))
	}
	return repo, nil
}
