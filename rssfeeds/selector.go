package rssfeeds

import (
	"context"
	"log"

	"sneakerblog/config"
	"sneakerblog/types"
)

// Outcome describes what happened to one source during a selection
type Outcome string

const (
	OutcomeMatched    Outcome = "matched"
	OutcomeNoMatch    Outcome = "no_match"
	OutcomeParseError Outcome = "parse_error"
)

// SourceResult records the outcome for a single scanned source
type SourceResult struct {
	Source Source  `json:"source"`
	Status Outcome `json:"status"`
	Items  int     `json:"items"`
	Error  string  `json:"error,omitempty"`
}

// Selection is the result of a selection pass
type Selection struct {
	Items   []types.FeedItem `json:"items"`
	Sources []SourceResult   `json:"sources"`
}

// Found reports whether at least one item matched
func (s Selection) Found() bool { return len(s.Items) > 0 }

// Selector scans sources for on-topic items
type Selector struct {
	parser Parser
	match  Matcher
	limit  int
}

// NewSelector creates a selector; a nil matcher accepts every title
func NewSelector(parser Parser, match Matcher) *Selector {
	if match == nil {
		match = func(string) bool { return true }
	}
	return &Selector{parser: parser, match: match, limit: config.PreviewLimit}
}

// SelectFirst returns the first matching item across sources, in order.
// A source that fails to parse is logged and skipped.
func (s *Selector) SelectFirst(ctx context.Context, sources []Source) Selection {
	var sel Selection
	for _, src := range sources {
		items, err := s.parser.Parse(ctx, src)
		if err != nil {
			log.Printf("⚠️  Skipping source %s: %v", src.Name, err)
			sel.Sources = append(sel.Sources, SourceResult{Source: src, Status: OutcomeParseError, Error: err.Error()})
			continue
		}

		for _, item := range items {
			if s.match(item.Title) {
				log.Printf("✅ Selected %q from %s", item.Title, src.Name)
				sel.Items = []types.FeedItem{item}
				sel.Sources = append(sel.Sources, SourceResult{Source: src, Status: OutcomeMatched, Items: len(items)})
				return sel
			}
		}

		log.Printf("No matching items in %s (%d scanned)", src.Name, len(items))
		sel.Sources = append(sel.Sources, SourceResult{Source: src, Status: OutcomeNoMatch, Items: len(items)})
	}
	return sel
}

// SelectPreview collects up to the preview limit of matches from the first source only
func (s *Selector) SelectPreview(ctx context.Context, sources []Source) Selection {
	var sel Selection
	if len(sources) == 0 {
		return sel
	}

	src := sources[0]
	items, err := s.parser.Parse(ctx, src)
	if err != nil {
		log.Printf("⚠️  Preview source %s failed: %v", src.Name, err)
		sel.Sources = []SourceResult{{Source: src, Status: OutcomeParseError, Error: err.Error()}}
		return sel
	}

	for _, item := range items {
		if len(sel.Items) >= s.limit {
			break
		}
		if s.match(item.Title) {
			sel.Items = append(sel.Items, item)
		}
	}

	status := OutcomeNoMatch
	if sel.Found() {
		status = OutcomeMatched
	}
	sel.Sources = []SourceResult{{Source: src, Status: status, Items: len(items)}}
	return sel
}
