package httpserver

import (
	"context"

	"content-srv/internal/comment/delivery/http"
	"content-srv/internal/comment/repository"
	"content-srv/internal/comment/usecase"
	"content-srv/internal/middleware"
	postRepo "content-srv/internal/post/repository"
	"content-srv/internal/registry"

	"github.com/gin-gonic/gin"
)

func (srv HTTPServer) setupCommentDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, posts postRepo.Repository) error {
	repo, err := registry.Resolve[repository.Repository](srv.registry, registry.KindComment, srv.postgresDB, srv.l)
	if err != nil {
		return err
	}

	uc := usecase.New(srv.l, repo, posts)

	handler := http.New(srv.l, uc, srv.discord)
	if err := handler.RegisterRoutes(r, mw); err != nil {
		return err
	}

	srv.l.Infof(ctx, "Comment domain registered")
	return nil
}
