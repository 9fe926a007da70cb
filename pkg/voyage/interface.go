package voyage

import (
	"context"
	"errors"

	pkghttp "content-srv/pkg/http"
)

var (
	ErrAPIKeyRequired = errors.New("voyage: API key is required")
	ErrEmptyInput     = errors.New("voyage: at least one text is required")
)

// IVoyage defines the interface for Voyage AI embeddings.
// Implementations are safe for concurrent use.
type IVoyage interface {
	// Embed returns one vector per text, in input order. inputType is InputTypeDocument or InputTypeQuery.
	Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error)
}

// NewVoyage creates a new Voyage client. Embed fails with ErrAPIKeyRequired when APIKey is empty.
func NewVoyage(cfg VoyageConfig) IVoyage {
	return newVoyage(cfg, pkghttp.NewClient(pkghttp.DefaultConfig()))
}

func newVoyage(cfg VoyageConfig, client pkghttp.IClient) *voyageImpl {
	if cfg.Model == "" {
		cfg.Model = Model
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = Endpoint
	}
	return &voyageImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		endpoint:   cfg.Endpoint,
		httpClient: client,
	}
}
