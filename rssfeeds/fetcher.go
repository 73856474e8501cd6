package rssfeeds

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sneakerblog/types"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// Parser turns a source into feed items
type Parser interface {
	Parse(ctx context.Context, src Source) ([]types.FeedItem, error)
}

// FeedParser reads RSS/Atom sources with gofeed and HTML sources with goquery
type FeedParser struct {
	rss       *gofeed.Parser
	client    *http.Client
	userAgent string
}

// NewFeedParser creates a parser sharing one HTTP client across both source kinds
func NewFeedParser(client *http.Client, userAgent string) *FeedParser {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	parser := gofeed.NewParser()
	parser.Client = client
	if userAgent != "" {
		parser.UserAgent = userAgent
	}
	return &FeedParser{rss: parser, client: client, userAgent: userAgent}
}

// Parse fetches src and returns its items in source order
func (p *FeedParser) Parse(ctx context.Context, src Source) ([]types.FeedItem, error) {
	switch src.Kind {
	case KindHTML:
		return p.scrape(ctx, src)
	case KindRSS, "":
		return p.parseFeed(ctx, src)
	default:
		return nil, fmt.Errorf("unknown source kind %q", src.Kind)
	}
}

func (p *FeedParser) parseFeed(ctx context.Context, src Source) ([]types.FeedItem, error) {
	feed, err := p.rss.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	items := make([]types.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil {
			continue
		}
		items = append(items, itemFromFeed(src, it))
	}
	return items, nil
}

func itemFromFeed(src Source, it *gofeed.Item) types.FeedItem {
	item := types.FeedItem{
		ID:       it.GUID,
		Title:    strings.TrimSpace(it.Title),
		Link:     strings.TrimSpace(it.Link),
		Summary:  it.Description,
		Content:  it.Content,
		MediaURL: mediaURL(it),
		Source:   src.Name,
	}

	// Use GUID if available, otherwise generate from URL
	if item.ID == "" && item.Link != "" {
		item.ID = types.GenerateID(item.Link)
	}

	if it.PublishedParsed != nil {
		item.PublishedAt = *it.PublishedParsed
	} else if it.UpdatedParsed != nil {
		item.PublishedAt = *it.UpdatedParsed
	}

	for _, enc := range it.Enclosures {
		if enc == nil || strings.TrimSpace(enc.URL) == "" {
			continue
		}
		item.Enclosures = append(item.Enclosures, types.Enclosure{
			URL:    strings.TrimSpace(enc.URL),
			Type:   enc.Type,
			Length: enc.Length,
		})
	}
	return item
}

// mediaURL reads media:content, media:thumbnail (also nested in media:group),
// then the feed-level item image
func mediaURL(it *gofeed.Item) string {
	if media, ok := it.Extensions["media"]; ok {
		for _, name := range []string{"content", "thumbnail"} {
			for _, e := range media[name] {
				if u := strings.TrimSpace(e.Attrs["url"]); u != "" {
					return u
				}
			}
		}
		for _, group := range media["group"] {
			for _, name := range []string{"content", "thumbnail"} {
				for _, e := range group.Children[name] {
					if u := strings.TrimSpace(e.Attrs["url"]); u != "" {
						return u
					}
				}
			}
		}
	}
	if it.Image != nil {
		return strings.TrimSpace(it.Image.URL)
	}
	return ""
}

// scrape reads article anchors from an HTML listing page
func (p *FeedParser) scrape(ctx context.Context, src Source) ([]types.FeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: status %s", src.URL, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	selector := src.Selector
	if selector == "" {
		selector = DefaultArticleSelector
	}

	var items []types.FeedItem
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Text())
		if title == "" {
			return
		}
		link := ""
		if href, ok := s.Attr("href"); ok {
			link = resolveURL(src.URL, href)
		}
		item := types.FeedItem{
			Title:  title,
			Link:   link,
			Source: src.Name,
		}
		if link != "" {
			item.ID = types.GenerateID(link)
		}
		items = append(items, item)
	})
	return items, nil
}
