package httpserver

import (
	"context"

	"content-srv/internal/category/delivery/http"
	"content-srv/internal/category/repository"
	"content-srv/internal/category/usecase"
	"content-srv/internal/middleware"
	"content-srv/internal/registry"
	"content-srv/pkg/postgre"

	"github.com/gin-gonic/gin"
)

func (srv HTTPServer) setupCategoryDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) (repository.Repository, error) {
	repo, err := registry.Resolve[repository.Repository](srv.registry, registry.KindCategory, srv.postgresDB, srv.l)
	if err != nil {
		return nil, err
	}

	uc := usecase.New(srv.l, repo, postgre.NewTxManager(srv.postgresDB, srv.l))

	handler := http.New(srv.l, uc, srv.discord)
	if err := handler.RegisterRoutes(r, mw); err != nil {
		return nil, err
	}

	srv.l.Infof(ctx, "Category domain registered")
	return repo, nil
}
