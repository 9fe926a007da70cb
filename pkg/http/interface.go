package http

import (
	"context"
	"net/http"
)

// IClient is a JSON HTTP client with timeout and retry on transport errors and 5xx.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a new HTTP client.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &clientImpl{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
	}
}
