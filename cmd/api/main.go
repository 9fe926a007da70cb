package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-srv/config"
	configKafka "content-srv/config/kafka"
	configPostgre "content-srv/config/postgre"
	configQdrant "content-srv/config/qdrant"
	configRedis "content-srv/config/redis"
	"content-srv/internal/httpserver"
	"content-srv/pkg/discord"
	pkgJWT "content-srv/pkg/jwt"
	pkgKafka "content-srv/pkg/kafka"
	"content-srv/pkg/log"
	pkgQdrant "content-srv/pkg/qdrant"
	"content-srv/pkg/voyage"
)

// @title       Content Service API
// @description Posts, categories and comments of the blog.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name content_auth_token
// @description Access token issued by the identity service, read when no Authorization header is sent.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Cancel on SIGINT/SIGTERM; the server shuts down gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect()
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 6. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 7. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Info(ctx, "JWT Manager initialized with algorithm: HS256")

	// 8. Initialize vector search clients (vector search only)
	var (
		qdrantClient pkgQdrant.IQdrant
		voyageClient voyage.IVoyage
	)
	if cfg.Search.Type == config.SearchTypeVector {
		qdrantClient, err = configQdrant.Connect(ctx, cfg.Qdrant)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Qdrant: ", err)
			return
		}
		defer configQdrant.Disconnect()
		logger.Infof(ctx, "Qdrant connected successfully to %s:%d", cfg.Qdrant.Host, cfg.Qdrant.Port)

		voyageClient = voyage.NewVoyage(voyage.VoyageConfig{
			APIKey: cfg.Voyage.APIKey,
			Model:  cfg.Voyage.Model,
		})
		logger.Info(ctx, "Voyage client initialized")
	}

	// 9. Initialize Kafka producer (async indexing only)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Search.Async {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Kafka producer: ", err)
			return
		}
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 10. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(httpserver.Config{
		// Server Configuration
		Logger:         logger,
		Host:           cfg.HTTPServer.Host,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,

		// Database Configuration
		PostgresDB: postgresDB,

		// Search Configuration
		RedisClient:   redisClient,
		QdrantClient:  qdrantClient,
		VoyageClient:  voyageClient,
		KafkaProducer: kafkaProducer,
		SearchConfig:  cfg.Search,

		// Authentication & Security Configuration
		JWTManager: jwtManager,
		CookieName: cfg.Cookie.Name,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
