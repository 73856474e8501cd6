package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Enclosure is a feed-level attachment (RSS <enclosure>)
type Enclosure struct {
	URL    string `json:"url"`
	Type   string `json:"type,omitempty"`
	Length string `json:"length,omitempty"`
}

// FeedItem represents one article as extracted from a feed source
type FeedItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Link        string      `json:"link,omitempty"`
	Summary     string      `json:"summary,omitempty"`
	Content     string      `json:"content,omitempty"`
	Enclosures  []Enclosure `json:"enclosures,omitempty"`
	MediaURL    string      `json:"media_url,omitempty"`
	Source      string      `json:"source,omitempty"`
	PublishedAt time.Time   `json:"published_at,omitempty"`
}

// GeneratedPost is the rewritten article ready for preview or publishing
type GeneratedPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Link    string `json:"link,omitempty"`
}

// PublishRequest is what the publisher sends to the storefront blog
type PublishRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

// PublishedArticle echoes the identifiers returned by the storefront
type PublishedArticle struct {
	ID     int64  `json:"id"`
	BlogID int64  `json:"blog_id"`
	Handle string `json:"handle,omitempty"`
	Title  string `json:"title"`
}

// Request converts a generated post into a publish request
func (p GeneratedPost) Request() PublishRequest {
	return PublishRequest{Title: p.Title, Content: p.Content, Image: p.Image}
}

// GenerateID creates a short, stable ID from a URL
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}
