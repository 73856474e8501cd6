package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sneakerblog/pipeline"
	"sneakerblog/state"
	"sneakerblog/types"
)

// APIClient is a thin HTTP client for the sneaker blog API
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a new API client; the timeout spans a full preview or publish run
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 3 * time.Minute,
		},
	}
}

// GetStatus fetches recent run activity
func (c *APIClient) GetStatus(ctx context.Context) (*state.StatusResponse, error) {
	var status state.StatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/status", &status); err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return &status, nil
}

// Preview asks the server for preview posts
func (c *APIClient) Preview(ctx context.Context) ([]types.GeneratedPost, error) {
	var resp struct {
		Posts []types.GeneratedPost `json:"posts"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/fetch-sneaker-news", &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch preview: %w", err)
	}
	return resp.Posts, nil
}

// FetchAndPublish triggers one publish run and waits for its result
func (c *APIClient) FetchAndPublish(ctx context.Context) (*pipeline.RunResult, error) {
	var resp struct {
		Run *pipeline.RunResult `json:"run"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/fetch-and-publish", &resp); err != nil {
		return nil, fmt.Errorf("failed to run publish: %w", err)
	}
	return resp.Run, nil
}

func (c *APIClient) doJSON(ctx context.Context, method, path string, result interface{}) error {
	var body io.Reader
	if method == http.MethodPost {
		body = bytes.NewReader([]byte("{}"))
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(raw))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
