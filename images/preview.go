package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const maxPageSize = 4 << 20 // 4MB

// ErrNoPreviewImage is returned when a page carries no usable preview image
var ErrNoPreviewImage = errors.New("no preview image found")

var previewSelectors = []string{
	`meta[property="og:image"]`,
	`meta[property="og:image:url"]`,
	`meta[name="og:image"]`,
	`meta[name="twitter:image"]`,
	`meta[property="twitter:image"]`,
}

// PageFetcher reads social-preview metadata from article pages
type PageFetcher struct {
	client    *http.Client
	userAgent string
}

// NewPageFetcher creates a fetcher; a nil client gets a 30s timeout
func NewPageFetcher(client *http.Client, userAgent string) *PageFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &PageFetcher{client: client, userAgent: userAgent}
}

// PreviewImage fetches pageURL and returns its og:image (or twitter:image),
// falling back to readability's lead image
func (f *PageFetcher) PreviewImage(ctx context.Context, pageURL string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page url: %w", err)
	}

	body, err := f.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}
	for _, sel := range previewSelectors {
		if content := strings.TrimSpace(doc.Find(sel).First().AttrOr("content", "")); content != "" {
			return absolute(base, content), nil
		}
	}

	article, err := readability.FromReader(bytes.NewReader(body), base)
	if err != nil {
		return "", fmt.Errorf("readability extraction failed: %w", err)
	}
	if img := strings.TrimSpace(article.Image); img != "" {
		return absolute(base, img), nil
	}
	return "", ErrNoPreviewImage
}

func (f *PageFetcher) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: status %s", pageURL, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
}

func absolute(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
