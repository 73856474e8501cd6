package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"sneakerblog/config"
	"sneakerblog/types"
)

// Publisher creates blog articles on a Shopify storefront
type Publisher struct {
	sessions   SessionStore
	blogID     string
	apiVersion string
	author     string
	tags       []string
	httpClient *http.Client
}

// Options configures a Publisher
type Options struct {
	BlogID     string
	APIVersion string
	Author     string
	Tags       []string
	HTTPClient *http.Client
}

// New creates a Publisher that loads credentials from sessions
func New(sessions SessionStore, opts Options) *Publisher {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.APIVersion == "" {
		opts.APIVersion = "2024-10"
	}
	if len(opts.Tags) == 0 {
		opts.Tags = config.BlogTags
	}
	return &Publisher{
		sessions:   sessions,
		blogID:     opts.BlogID,
		apiVersion: opts.APIVersion,
		author:     opts.Author,
		tags:       opts.Tags,
		httpClient: opts.HTTPClient,
	}
}

type articlePayload struct {
	Article articleFields `json:"article"`
}

type articleFields struct {
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	Tags      string `json:"tags"`
	BodyHTML  string `json:"body_html"`
	Published bool   `json:"published"`
}

type articleResponse struct {
	Article types.PublishedArticle `json:"article"`
}

// RenderBody wraps the image and content in the fixed post markup
func RenderBody(image, title, content string) string {
	return fmt.Sprintf(config.PostBodyTemplate, image, html.EscapeString(title), content)
}

// Publish creates one published article. There is no idempotency key, so calling it
// twice with the same request creates two articles.
func (p *Publisher) Publish(ctx context.Context, req types.PublishRequest) (*types.PublishedArticle, error) {
	if p.blogID == "" {
		return nil, errors.New("blog id is not configured")
	}
	session, err := p.sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	payload := articlePayload{Article: articleFields{
		Title:     req.Title,
		Author:    p.author,
		Tags:      strings.Join(p.tags, ", "),
		BodyHTML:  RenderBody(req.Image, req.Title, req.Content),
		Published: true,
	}}

	path := fmt.Sprintf("/admin/api/%s/blogs/%s/articles.json", p.apiVersion, p.blogID)
	var result articleResponse
	if err := p.doJSONRequest(ctx, session, http.MethodPost, path, payload, &result); err != nil {
		return nil, err
	}

	log.Printf("✅ Published article %d: %s", result.Article.ID, req.Title)
	return &result.Article, nil
}

// doJSONRequest sends payload as JSON to the session's shop and decodes the reply into result
func (p *Publisher) doJSONRequest(ctx context.Context, session *Session, method, path string, payload, result interface{}) error {
	url := shopBaseURL(session.Shop) + path

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", session.AccessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("storefront returned %d: %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// shopBaseURL accepts either a bare shop domain or a full base URL
func shopBaseURL(shop string) string {
	shop = strings.TrimRight(strings.TrimSpace(shop), "/")
	if strings.HasPrefix(shop, "http://") || strings.HasPrefix(shop, "https://") {
		return shop
	}
	return "https://" + shop
}
