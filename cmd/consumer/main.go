package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"content-srv/config"
	"content-srv/config/postgre"
	"content-srv/config/qdrant"
	"content-srv/config/redis"
	"content-srv/internal/consumer"
	"content-srv/pkg/discord"
	"content-srv/pkg/log"
	"content-srv/pkg/voyage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Content Consumer Service...")

	// Redis
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// Qdrant
	qdrantClient, err := qdrant.Connect(ctx, cfg.Qdrant)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Qdrant: %v", err)
		return
	}
	defer qdrant.Disconnect()
	logger.Info(ctx, "Qdrant client initialized")

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect()
	logger.Info(ctx, "PostgreSQL client initialized")

	// Voyage
	voyageClient := voyage.NewVoyage(voyage.VoyageConfig{
		APIKey: cfg.Voyage.APIKey,
		Model:  cfg.Voyage.Model,
	})
	logger.Info(ctx, "Voyage client initialized")

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Info(ctx, "Discord client initialized")
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:       logger,
		KafkaConfig:  cfg.Kafka,
		SearchConfig: cfg.Search,
		RedisClient:  redisClient,
		QdrantClient: qdrantClient,
		PostgresDB:   postgresDB,
		VoyageClient: voyageClient,
		Discord:      discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
