package voyage

import pkghttp "content-srv/pkg/http"

const (
	// Endpoint is the Voyage AI embeddings API.
	Endpoint = "https://api.voyageai.com/v1/embeddings"
	// Model is the default embedding model.
	Model = "voyage-3"

	InputTypeDocument = "document"
	InputTypeQuery    = "query"
)

// VoyageConfig holds Voyage AI settings. Empty Model and Endpoint use the defaults.
type VoyageConfig struct {
	APIKey   string
	Model    string
	Endpoint string
}

// Request defines the request body for Embedding API.
type Request struct {
	Input     []string `json:"input"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type,omitempty"`
}

// Response defines the response body from Embedding API.
type Response struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  Usage       `json:"usage"`
}

// Embedding represents a single embedding object.
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// Usage represents token usage.
type Usage struct {
	TotalTokens int `json:"total_tokens"`
}

type voyageImpl struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient pkghttp.IClient
}
