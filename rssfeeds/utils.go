package rssfeeds

import (
	"net/url"
	"strings"
)

// Matcher decides whether a title is on topic
type Matcher func(title string) bool

// KeywordMatcher matches titles containing any of the keywords, ignoring case
func KeywordMatcher(keywords ...string) Matcher {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}
	return func(title string) bool {
		t := strings.ToLower(title)
		for _, k := range lowered {
			if strings.Contains(t, k) {
				return true
			}
		}
		return false
	}
}

// resolveURL turns href into an absolute URL using base; href is returned as-is on failure
func resolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}
