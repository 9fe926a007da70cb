package consumer

import (
	"context"
	"database/sql"
	"fmt"

	categoryRepo "content-srv/internal/category/repository"
	categoryPostgre "content-srv/internal/category/repository/postgre"
	postConsumer "content-srv/internal/post/delivery/kafka/consumer"
	postRepo "content-srv/internal/post/repository"
	postPostgre "content-srv/internal/post/repository/postgre"
	postUsecase "content-srv/internal/post/usecase"
	"content-srv/internal/registry"
	"content-srv/internal/search"
	searchQdrant "content-srv/internal/search/repository/qdrant"
	searchRedis "content-srv/internal/search/repository/redis"
	searchUsecase "content-srv/internal/search/usecase"
	"content-srv/pkg/log"
	"content-srv/pkg/postgre"
	"content-srv/pkg/sanitize"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	postConsumer *postConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	reg := registry.New()
	if err := reg.Register(registry.KindCategory, func(db *sql.DB, l log.Logger) any {
		return categoryPostgre.New(db, l)
	}); err != nil {
		return nil, err
	}
	if err := reg.Register(registry.KindPost, func(db *sql.DB, l log.Logger) any {
		return postPostgre.New(db, l, postRepo.SanitizeHTML(sanitize.New()))
	}); err != nil {
		return nil, err
	}

	posts, err := registry.Resolve[postRepo.Repository](reg, registry.KindPost, srv.postgresDB, srv.l)
	if err != nil {
		return nil, err
	}
	categories, err := registry.Resolve[categoryRepo.Repository](reg, registry.KindCategory, srv.postgresDB, srv.l)
	if err != nil {
		return nil, err
	}

	// Search domain
	searchCfg := search.NewConfig(srv.searchConfig)
	searchUC := searchUsecase.New(
		srv.l,
		searchQdrant.New(srv.qdrantClient, searchCfg.Collection, srv.l),
		searchRedis.New(srv.redisClient, srv.l),
		srv.voyageClient,
		searchCfg,
	)
	if err := searchUC.EnsureCollection(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure search collection: %w", err)
	}

	// Post domain indexes inline here; the events already come from Kafka.
	postUC := postUsecase.New(postUsecase.Config{
		Logger:       srv.l,
		Repo:         posts,
		CategoryRepo: categories,
		TxManager:    postgre.NewTxManager(srv.postgresDB, srv.l),
		Indexer:      postUsecase.NewDirectIndexer(searchUC),
		Searcher:     searchUC,
		SearchType:   srv.searchConfig.Type,
	})

	postCons, err := postConsumer.New(postConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     postUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post consumer: %w", err)
	}

	srv.l.Infof(ctx, "Post indexing domain initialized")

	return &domainConsumers{
		postConsumer: postCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.postConsumer.ConsumePostEvents(ctx); err != nil {
		return fmt.Errorf("failed to start post consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.postConsumer != nil {
		if err := consumers.postConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing post consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
