package generator

import (
	"context"
	"fmt"
	"net/http"

	"sneakerblog/config"
	"sneakerblog/types"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI generates posts with the chat completions API
type OpenAI struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAI creates an OpenAI generator. baseURL and httpClient are optional.
func NewOpenAI(apiKey, model, baseURL string, maxTokens int, httpClient *http.Client) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	if model == "" {
		model = config.DefaultOpenAIModel
	}
	if maxTokens <= 0 {
		maxTokens = config.DefaultMaxTokens
	}
	return &OpenAI{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Generate returns the completion text verbatim
func (o *OpenAI) Generate(ctx context.Context, item types.FeedItem) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(item)},
		},
		MaxTokens: o.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
