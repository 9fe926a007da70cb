package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigName = "content-config"

	SearchTypeLike     = "like"
	SearchTypeFulltext = "fulltext"
	SearchTypeVector   = "vector"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Posts, categories, comments
	Postgres PostgresConfig

	// Redis - Query embedding cache
	Redis RedisConfig

	// Kafka - Post index events
	Kafka KafkaConfig

	// Qdrant - Post vectors
	Qdrant QdrantConfig

	// Voyage - Embedding
	Voyage VoyageConfig

	// Search - Post search backend
	Search SearchConfig

	// JWT - Authentication
	JWT    JWTConfig
	Cookie CookieConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host           string
	Port           int
	Mode           string
	AllowedOrigins []string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka. GroupID is only read by the consumer.
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// QdrantConfig is the configuration for Qdrant
type QdrantConfig struct {
	Host    string
	Port    int
	APIKey  string
	UseTLS  bool
	Timeout int // in seconds
}

// VoyageConfig is the configuration for Voyage AI (embedding).
type VoyageConfig struct {
	APIKey string
	Model  string
}

// SearchConfig selects how post search is served.
type SearchConfig struct {
	// Type is one of like, fulltext or vector.
	Type string
	// Async indexes posts through Kafka instead of inline on write.
	Async      bool
	Collection string
	VectorSize uint64
	Distance   string
	// CacheTTL is the query embedding cache lifetime in seconds.
	CacheTTL int
	// Limit caps the number of vector hits loaded for one search.
	Limit uint64
}

// JWTConfig is used to verify tokens issued by the identity service.
type JWTConfig struct {
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// CookieConfig names the cookie read when no Authorization header is sent.
type CookieConfig struct {
	Name string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	return load(viper.New(), defaultConfigName)
}

func load(v *viper.Viper, name string) (*Config, error) {
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/content/")

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = v.GetStringSlice("http_server.allowed_origins")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = v.GetString("postgres.host")
	cfg.Postgres.Port = v.GetInt("postgres.port")
	cfg.Postgres.User = v.GetString("postgres.user")
	cfg.Postgres.Password = v.GetString("postgres.password")
	cfg.Postgres.DBName = v.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = v.GetString("postgres.sslmode")
	cfg.Postgres.Schema = v.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// Kafka
	cfg.Kafka.Brokers = v.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = v.GetString("kafka.topic")
	cfg.Kafka.GroupID = v.GetString("kafka.group_id")

	// Qdrant
	cfg.Qdrant.Host = v.GetString("qdrant.host")
	cfg.Qdrant.Port = v.GetInt("qdrant.port")
	cfg.Qdrant.APIKey = v.GetString("qdrant.api_key")
	cfg.Qdrant.UseTLS = v.GetBool("qdrant.use_tls")
	cfg.Qdrant.Timeout = v.GetInt("qdrant.timeout")

	// Voyage
	cfg.Voyage.APIKey = v.GetString("voyage.api_key")
	cfg.Voyage.Model = v.GetString("voyage.model")

	// Search
	cfg.Search.Type = strings.ToLower(v.GetString("search.type"))
	cfg.Search.Async = v.GetBool("search.async")
	cfg.Search.Collection = v.GetString("search.collection")
	cfg.Search.VectorSize = v.GetUint64("search.vector_size")
	cfg.Search.Distance = v.GetString("search.distance")
	cfg.Search.CacheTTL = v.GetInt("search.cache_ttl")
	cfg.Search.Limit = v.GetUint64("search.limit")

	// JWT
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	cfg.JWT.Audience = v.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = v.GetString("jwt.secret_key")
	cfg.JWT.TTL = v.GetInt("jwt.ttl")

	// Cookie
	cfg.Cookie.Name = v.GetString("cookie.name")

	// Discord
	cfg.Discord.WebhookID = v.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = v.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.allowed_origins", []string{"*"})

	// Logger
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.dbname", "postgres")
	v.SetDefault("postgres.sslmode", "prefer")
	v.SetDefault("postgres.schema", "public")

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Kafka
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "content.post.events")
	v.SetDefault("kafka.group_id", "content-srv-indexer")

	// Qdrant
	v.SetDefault("qdrant.host", "localhost")
	v.SetDefault("qdrant.port", 6334)
	v.SetDefault("qdrant.use_tls", false)
	v.SetDefault("qdrant.timeout", 30)

	// Voyage
	v.SetDefault("voyage.model", "voyage-3")

	// Search
	v.SetDefault("search.type", SearchTypeLike)
	v.SetDefault("search.async", false)
	v.SetDefault("search.collection", "content_posts")
	v.SetDefault("search.vector_size", 1024)
	v.SetDefault("search.distance", "cosine")
	v.SetDefault("search.cache_ttl", 86400) // 1 day
	v.SetDefault("search.limit", 200)

	// JWT
	v.SetDefault("jwt.issuer", "identity-srv")
	v.SetDefault("jwt.audience", []string{"content-srv"})
	v.SetDefault("jwt.ttl", 28800) // 8 hours

	// Cookie
	v.SetDefault("cookie.name", "content_auth_token")
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if len(cfg.JWT.Audience) == 0 {
		return fmt.Errorf("jwt.audience must have at least one value")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Validate Search Configuration
	switch cfg.Search.Type {
	case SearchTypeLike, SearchTypeFulltext:
	case SearchTypeVector:
		if cfg.Voyage.APIKey == "" {
			return fmt.Errorf("voyage.api_key is required when search.type is vector")
		}
		if cfg.Qdrant.Host == "" || cfg.Qdrant.Port == 0 {
			return fmt.Errorf("qdrant.host and qdrant.port are required when search.type is vector")
		}
		if cfg.Search.VectorSize == 0 {
			return fmt.Errorf("search.vector_size must be greater than 0")
		}
		if cfg.Search.CacheTTL <= 0 {
			return fmt.Errorf("search.cache_ttl must be greater than 0")
		}
	default:
		return fmt.Errorf("search.type must be one of like, fulltext, vector, got %q", cfg.Search.Type)
	}
	if cfg.Search.Async {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when search.async is enabled")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when search.async is enabled")
		}
	}

	return nil
}
