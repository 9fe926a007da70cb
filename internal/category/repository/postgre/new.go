package postgre

import (
	"database/sql"

	"content-srv/internal/category/repository"
	"content-srv/pkg/log"
)

const table = "content_categories"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
