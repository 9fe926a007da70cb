package httpserver

import (
	"context"

	categoryRepo "content-srv/internal/category/repository"
	"content-srv/internal/middleware"
	"content-srv/internal/post"
	"content-srv/internal/post/delivery/http"
	"content-srv/internal/post/delivery/kafka/producer"
	"content-srv/internal/post/repository"
	"content-srv/internal/post/usecase"
	"content-srv/internal/registry"
	"content-srv/internal/search"
	"content-srv/pkg/postgre"

	"github.com/gin-gonic/gin"
)

func (srv HTTPServer) setupPostDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, catRepo categoryRepo.Repository, searchUC search.UseCase) (repository.Repository, error) {
	repo, err := registry.Resolve[repository.Repository](srv.registry, registry.KindPost, srv.postgresDB, srv.l)
	if err != nil {
		return nil, err
	}

	uc := usecase.New(usecase.Config{
		Logger:       srv.l,
		Repo:         repo,
		CategoryRepo: catRepo,
		TxManager:    postgre.NewTxManager(srv.postgresDB, srv.l),
		Indexer:      srv.postIndexer(ctx, searchUC),
		Searcher:     searchUC,
		SearchType:   srv.searchConfig.Type,
	})

	handler := http.New(srv.l, uc, srv.discord)
	if err := handler.RegisterRoutes(r, mw); err != nil {
		return nil, err
	}

	srv.l.Infof(ctx, "Post domain registered")
	return repo, nil
}

// postIndexer publishes to Kafka in async mode and indexes inline otherwise.
// Without a vector index there is nothing to keep in sync.
func (srv HTTPServer) postIndexer(ctx context.Context, searchUC search.UseCase) post.Indexer {
	if srv.searchConfig.Async {
		srv.l.Infof(ctx, "Post indexing: kafka")
		return producer.New(srv.l, srv.kafkaProducer)
	}
	if searchUC != nil {
		srv.l.Infof(ctx, "Post indexing: direct")
		return usecase.NewDirectIndexer(searchUC)
	}
	return nil
}
