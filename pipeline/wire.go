package pipeline

import (
	"fmt"
	"net/http"

	"sneakerblog/config"
	"sneakerblog/generator"
	"sneakerblog/images"
	"sneakerblog/publisher"
	"sneakerblog/rssfeeds"
)

// NewFromConfig builds a Runner with the production components described by cfg.
func NewFromConfig(cfg config.Config, rec Recorder) (*Runner, error) {
	httpClient, genClient := newClients(cfg)

	gen, err := generator.New(cfg, genClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	sessions := publisher.StaticSessionStore{Shop: cfg.ShopifyStore, AccessToken: cfg.ShopifyToken}
	pub := publisher.New(sessions, publisher.Options{
		BlogID:     cfg.ShopifyBlogID,
		APIVersion: cfg.ShopifyAPIVersion,
		Author:     cfg.BlogAuthor,
		Tags:       cfg.BlogTags,
		HTTPClient: httpClient,
	})

	parser := rssfeeds.NewFeedParser(httpClient, cfg.UserAgent)
	return NewRunner(Deps{
		Selector:  rssfeeds.NewSelector(parser, rssfeeds.KeywordMatcher(cfg.Keywords...)),
		Resolver:  images.NewResolver(images.NewPageFetcher(httpClient, cfg.UserAgent)),
		Generator: gen,
		Publisher: pub,
		Sources:   rssfeeds.ResolveSources(cfg.FeedSources),
		Recorder:  rec,
	}), nil
}

// newClients returns the client for feed, page and storefront calls and a separate
// client for completions, which routinely outlast a page fetch.
func newClients(cfg config.Config) (fetch, generate *http.Client) {
	return &http.Client{Timeout: cfg.HTTPTimeout}, &http.Client{Timeout: cfg.GenerationTimeout}
}
