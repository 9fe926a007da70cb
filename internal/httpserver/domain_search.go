package httpserver

import (
	"context"
	"fmt"

	"content-srv/config"
	"content-srv/internal/search"
	searchQdrant "content-srv/internal/search/repository/qdrant"
	searchRedis "content-srv/internal/search/repository/redis"
	searchUsecase "content-srv/internal/search/usecase"
)

// setupSearchDomain returns nil when posts are searched in Postgres only.
func (srv HTTPServer) setupSearchDomain(ctx context.Context) (search.UseCase, error) {
	if srv.searchConfig.Type != config.SearchTypeVector {
		srv.l.Infof(ctx, "Search domain skipped (type %q)", srv.searchConfig.Type)
		return nil, nil
	}

	cfg := search.NewConfig(srv.searchConfig)
	pointRepo := searchQdrant.New(srv.qdrantClient, cfg.Collection, srv.l)
	cacheRepo := searchRedis.New(srv.redisClient, srv.l)

	uc := searchUsecase.New(srv.l, pointRepo, cacheRepo, srv.voyageClient, cfg)
	if err := uc.EnsureCollection(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure search collection: %w", err)
	}

	srv.l.Infof(ctx, "Search domain initialized")
	return uc, nil
}
