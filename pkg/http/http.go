package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, http.MethodGet, url, nil, headers)
}

// Post performs a POST request with a JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
		payload = b
	}
	if headers == nil {
		headers = map[string]string{}
	}
	if _, ok := headers["Content-Type"]; !ok {
		headers["Content-Type"] = "application/json"
	}
	return c.do(ctx, http.MethodPost, url, payload, headers)
}

func (c *clientImpl) do(ctx context.Context, method, url string, payload []byte, headers map[string]string) ([]byte, int, error) {
	var (
		resp *http.Response
		err  error
	)
	for i := 0; i <= c.config.Retries; i++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create request: %w", err)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err = c.client.Do(req)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			break
		}
		if i == c.config.Retries {
			break
		}
		if err == nil {
			_ = resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		case <-time.After(c.config.RetryWait):
		}
	}
	if err != nil {
		return nil, 0, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}
