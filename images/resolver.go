package images

import (
	"context"
	"log"
	"regexp"
	"strings"

	"sneakerblog/config"
	"sneakerblog/types"
)

// Source names the fallback step that produced an image
type Source string

const (
	SourceEmbedded      Source = "embedded"
	SourceEnclosure     Source = "enclosure"
	SourceMedia         Source = "media"
	SourceSocialPreview Source = "social_preview"
	SourceBrand         Source = "brand"
	SourcePlaceholder   Source = "placeholder"
)

// Resolution is the resolved image and the step that produced it
type Resolution struct {
	URL    string `json:"url"`
	Source Source `json:"source"`
}

// FellBack reports whether resolution ended on a static image
func (r Resolution) FellBack() bool {
	return r.Source == SourceBrand || r.Source == SourcePlaceholder
}

// PreviewFetcher looks up the social-preview image of a page
type PreviewFetcher interface {
	PreviewImage(ctx context.Context, pageURL string) (string, error)
}

// Resolver walks the image fallback chain for a feed item
type Resolver struct {
	preview     PreviewFetcher
	brands      []config.Brand
	placeholder string
}

// NewResolver creates a resolver; preview may be nil to skip the page lookup
func NewResolver(preview PreviewFetcher) *Resolver {
	return &Resolver{
		preview:     preview,
		brands:      config.BrandLogos,
		placeholder: config.PlaceholderImage,
	}
}

// Resolve always returns a non-empty URL
func (r *Resolver) Resolve(ctx context.Context, item types.FeedItem) Resolution {
	for _, markup := range []string{item.Content, item.Summary} {
		if u, ok := EmbeddedImage(markup); ok {
			return Resolution{URL: u, Source: SourceEmbedded}
		}
	}

	for _, enc := range item.Enclosures {
		if u := strings.TrimSpace(enc.URL); u != "" {
			return Resolution{URL: u, Source: SourceEnclosure}
		}
	}

	if u := strings.TrimSpace(item.MediaURL); u != "" {
		return Resolution{URL: u, Source: SourceMedia}
	}

	if r.preview != nil && strings.TrimSpace(item.Link) != "" {
		u, err := r.preview.PreviewImage(ctx, item.Link)
		if err != nil {
			log.Printf("⚠️  Preview image lookup failed for %s: %v", item.Link, err)
		} else if u = strings.TrimSpace(u); u != "" {
			return Resolution{URL: u, Source: SourceSocialPreview}
		}
	}

	if u, ok := BrandImage(item.Title, r.brands); ok {
		return Resolution{URL: u, Source: SourceBrand}
	}

	return Resolution{URL: r.placeholder, Source: SourcePlaceholder}
}

var imgSrcRe = regexp.MustCompile(`(?is)<img\b[^>]*?\ssrc\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// EmbeddedImage returns the src of the first <img> tag in markup
func EmbeddedImage(markup string) (string, bool) {
	if strings.TrimSpace(markup) == "" {
		return "", false
	}
	m := imgSrcRe.FindStringSubmatch(markup)
	if m == nil {
		return "", false
	}
	u := m[1]
	if u == "" {
		u = m[2]
	}
	u = strings.TrimSpace(u)
	return u, u != ""
}

// BrandImage returns the logo of the first brand whose keyword appears in title
func BrandImage(title string, brands []config.Brand) (string, bool) {
	t := strings.ToLower(title)
	for _, b := range brands {
		if b.Keyword != "" && strings.Contains(t, strings.ToLower(b.Keyword)) {
			return b.LogoURL, true
		}
	}
	return "", false
}
