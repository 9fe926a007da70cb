package postgre

import (
	"database/sql"

	"content-srv/internal/post/repository"
	"content-srv/pkg/log"
)

type implRepository struct {
	db         *sql.DB
	l          log.Logger
	transforms []repository.PostTransform
}

// New returns the postgres post repository. transforms run on every loaded post.
func New(db *sql.DB, l log.Logger, transforms ...repository.PostTransform) repository.Repository {
	return &implRepository{
		db:         db,
		l:          l,
		transforms: transforms,
	}
}
