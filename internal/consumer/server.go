package consumer

import (
	"context"
	"database/sql"

	"content-srv/config"
	"content-srv/pkg/discord"
	"content-srv/pkg/log"
	"content-srv/pkg/qdrant"
	"content-srv/pkg/redis"
	"content-srv/pkg/voyage"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l            log.Logger
	kafkaConfig  config.KafkaConfig
	searchConfig config.SearchConfig

	// Infrastructure clients
	redisClient  redis.IRedis
	qdrantClient qdrant.IQdrant
	postgresDB   *sql.DB

	// AI/ML clients
	voyageClient voyage.IVoyage

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger       log.Logger
	KafkaConfig  config.KafkaConfig
	SearchConfig config.SearchConfig

	// Infrastructure clients
	RedisClient  redis.IRedis
	QdrantClient qdrant.IQdrant
	PostgresDB   *sql.DB

	// AI/ML clients
	VoyageClient voyage.IVoyage

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.stopConsumers(ctx, consumers)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
