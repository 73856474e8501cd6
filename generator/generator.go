package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"sneakerblog/config"
	"sneakerblog/types"
)

// ErrEmptyCompletion is returned when the provider answers without any text
var ErrEmptyCompletion = errors.New("generation returned no content")

// Generator rewrites a feed item into blog post text
type Generator interface {
	Generate(ctx context.Context, item types.FeedItem) (string, error)
}

// New returns the generator selected by cfg.AIProvider
func New(cfg config.Config, httpClient *http.Client) (Generator, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.AIProvider))
	switch provider {
	case "", "openai":
		if cfg.OpenAIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is not set")
		}
		return NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.MaxTokens, httpClient), nil
	case "cohere":
		if cfg.CohereKey == "" {
			return nil, errors.New("COHERE_API_KEY is not set")
		}
		return NewCohere(cfg.CohereKey, cfg.CohereModel, cfg.CohereBaseURL, cfg.MaxTokens, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", provider)
	}
}

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// BuildPrompt fills the fixed prompt template with the item's title, summary and link
func BuildPrompt(item types.FeedItem) string {
	return fmt.Sprintf(config.PromptTemplate,
		strings.TrimSpace(item.Title),
		plainText(item.Summary),
		strings.TrimSpace(item.Link),
	)
}

func plainText(markup string) string {
	text := htmlTagRe.ReplaceAllString(markup, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
