package generator

import (
	"context"
	"fmt"
	"net/http"

	"sneakerblog/config"
	"sneakerblog/types"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/cohere-ai/cohere-go/v2/option"
)

// Cohere generates posts with the Cohere chat API
type Cohere struct {
	client    *cohereclient.Client
	model     string
	maxTokens int
}

// NewCohere creates a Cohere generator. baseURL and httpClient are optional.
func NewCohere(apiKey, model, baseURL string, maxTokens int, httpClient *http.Client) *Cohere {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if model == "" {
		model = config.DefaultCohereModel
	}
	if maxTokens <= 0 {
		maxTokens = config.DefaultMaxTokens
	}
	opts := []option.RequestOption{
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	}
	if baseURL != "" {
		opts = append(opts, cohereclient.WithBaseURL(baseURL))
	}
	client := cohereclient.NewClient(opts...)
	return &Cohere{client: client, model: model, maxTokens: maxTokens}
}

// Generate returns the chat response text verbatim
func (c *Cohere) Generate(ctx context.Context, item types.FeedItem) (string, error) {
	model := c.model
	maxTokens := c.maxTokens
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message:   BuildPrompt(item),
		Model:     &model,
		MaxTokens: &maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat failed: %w", err)
	}
	if resp == nil || resp.Text == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Text, nil
}
