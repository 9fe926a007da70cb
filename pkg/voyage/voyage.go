package voyage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (v *voyageImpl) Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error) {
	if v.apiKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	req := Request{
		Input:     texts,
		Model:     v.model,
		InputType: inputType,
	}
	headers := map[string]string{"Authorization": "Bearer " + v.apiKey}

	body, statusCode, err := v.httpClient.Post(ctx, v.endpoint, req, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call Voyage API: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("voyage API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Voyage response: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("voyage API returned %d embeddings for %d texts", len(resp.Data), len(texts))
	}

	embeddings := make([][]float32, len(resp.Data))
	for _, item := range resp.Data {
		if item.Index < 0 || item.Index >= len(embeddings) {
			return nil, fmt.Errorf("voyage API returned out of range index %d", item.Index)
		}
		embeddings[item.Index] = item.Embedding
	}
	return embeddings, nil
}
