package rssfeeds

import "strings"

// Kind tells the parser how to read a source
type Kind string

const (
	KindRSS  Kind = "rss"
	KindHTML Kind = "html"
)

// DefaultArticleSelector matches article anchors on scraped listing pages
const DefaultArticleSelector = ".post-title a"

// Source is a single feed source: an RSS/Atom URL or an HTML listing page
type Source struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Kind     Kind   `json:"kind"`
	Selector string `json:"selector,omitempty"`
}

// FeedPresets maps friendly keys to sneaker-news sources
var FeedPresets = map[string]Source{
	"sneakernews": {
		Name: "Sneaker News",
		URL:  "https://sneakernews.com/feed/",
		Kind: KindRSS,
	},
	"nicekicks": {
		Name: "Nice Kicks",
		URL:  "https://www.nicekicks.com/feed/",
		Kind: KindRSS,
	},
	"hypebeast": {
		Name: "Hypebeast Footwear",
		URL:  "https://hypebeast.com/footwear/feed",
		Kind: KindRSS,
	},
	"sneakernews-html": {
		Name:     "Sneaker News (homepage)",
		URL:      "https://sneakernews.com/",
		Kind:     KindHTML,
		Selector: DefaultArticleSelector,
	},
}

// ResolveSource resolves a feed identifier to a Source.
// A preset name returns the preset; anything else is treated as an RSS URL.
func ResolveSource(feedInput string) Source {
	key := strings.ToLower(strings.TrimSpace(feedInput))
	if src, exists := FeedPresets[key]; exists {
		return src
	}
	return Source{Name: feedInput, URL: strings.TrimSpace(feedInput), Kind: KindRSS}
}

// ResolveSources resolves each identifier, keeping the given order
func ResolveSources(inputs []string) []Source {
	sources := make([]Source, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in) == "" {
			continue
		}
		sources = append(sources, ResolveSource(in))
	}
	return sources
}
