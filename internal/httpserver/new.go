package httpserver

import (
	"database/sql"
	"errors"

	"content-srv/config"
	"content-srv/internal/registry"
	"content-srv/pkg/discord"
	pkgKafka "content-srv/pkg/kafka"
	"content-srv/pkg/log"
	pkgQdrant "content-srv/pkg/qdrant"
	pkgRedis "content-srv/pkg/redis"
	"content-srv/pkg/sanitize"
	"content-srv/pkg/scope"
	"content-srv/pkg/voyage"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin            *gin.Engine
	l              log.Logger
	host           string
	port           int
	mode           string
	environment    string
	allowedOrigins []string

	// Database Configuration
	postgresDB *sql.DB
	registry   *registry.Registry

	// Search Configuration
	redisClient   pkgRedis.IRedis
	qdrantClient  pkgQdrant.IQdrant
	voyageClient  voyage.IVoyage
	kafkaProducer pkgKafka.IProducer
	searchConfig  config.SearchConfig

	// Authentication & Security Configuration
	jwtManager scope.Manager
	cookieName string
	sanitizer  sanitize.ISanitizer

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger         log.Logger
	Host           string
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	// Database Configuration
	PostgresDB *sql.DB

	// Search Configuration. Qdrant, Voyage and Kafka are only needed for vector search.
	RedisClient   pkgRedis.IRedis
	QdrantClient  pkgQdrant.IQdrant
	VoyageClient  voyage.IVoyage
	KafkaProducer pkgKafka.IProducer
	SearchConfig  config.SearchConfig

	// Authentication & Security Configuration
	JWTManager scope.Manager
	CookieName string

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:              cfg.Logger,
		gin:            gin.New(),
		host:           cfg.Host,
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,

		// Database Configuration
		postgresDB: cfg.PostgresDB,
		registry:   registry.New(),

		// Search Configuration
		redisClient:   cfg.RedisClient,
		qdrantClient:  cfg.QdrantClient,
		voyageClient:  cfg.VoyageClient,
		kafkaProducer: cfg.KafkaProducer,
		searchConfig:  cfg.SearchConfig,

		// Authentication & Security Configuration
		jwtManager: cfg.JWTManager,
		cookieName: cfg.CookieName,
		sanitizer:  sanitize.New(),

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Search Configuration
	if srv.searchConfig.Type == config.SearchTypeVector {
		if srv.qdrantClient == nil {
			return errors.New("qdrantClient is required for vector search")
		}
		if srv.voyageClient == nil {
			return errors.New("voyageClient is required for vector search")
		}
	}
	if srv.searchConfig.Async && srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required for async indexing")
	}

	// Authentication & Security Configuration
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	// Monitoring & Notification Configuration (optional)

	return nil
}
