package search

import (
	"time"

	"content-srv/config"
	"content-srv/internal/model"
)

type Config struct {
	Collection string
	VectorSize uint64
	Distance   string
	CacheTTL   time.Duration
	// Limit caps the hits of one search.
	Limit uint64
}

// NewConfig converts the service search settings.
func NewConfig(cfg config.SearchConfig) Config {
	return Config{
		Collection: cfg.Collection,
		VectorSize: cfg.VectorSize,
		Distance:   cfg.Distance,
		CacheTTL:   time.Duration(cfg.CacheTTL) * time.Second,
		Limit:      cfg.Limit,
	}
}

type IndexInput struct {
	Post model.Post
}

type SearchInput struct {
	Text  string
	Limit uint64
}

type Hit struct {
	ID    string
	Score float32
}
