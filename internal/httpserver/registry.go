package httpserver

import (
	"database/sql"

	categoryPostgre "content-srv/internal/category/repository/postgre"
	commentPostgre "content-srv/internal/comment/repository/postgre"
	postRepo "content-srv/internal/post/repository"
	postPostgre "content-srv/internal/post/repository/postgre"
	"content-srv/internal/registry"
	"content-srv/pkg/log"
)

// registerRepositories fills the registry with every repository kind the domains resolve.
func (srv HTTPServer) registerRepositories() error {
	if err := srv.registry.Register(registry.KindCategory, func(db *sql.DB, l log.Logger) any {
		return categoryPostgre.New(db, l)
	}); err != nil {
		return err
	}
	if err := srv.registry.Register(registry.KindPost, func(db *sql.DB, l log.Logger) any {
		return postPostgre.New(db, l, postRepo.SanitizeHTML(srv.sanitizer))
	}); err != nil {
		return err
	}
	return srv.registry.Register(registry.KindComment, func(db *sql.DB, l log.Logger) any {
		return commentPostgre.New(db, l)
	})
}
