package config

import (
	"reflect"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "AI_PROVIDER", "GENERATION_MAX_TOKENS", "FEED_SOURCES", "BLOG_TAGS", "CRON_DAILY", "CRON_WEEKLY", "HTTP_TIMEOUT_SECONDS", "GENERATION_TIMEOUT_SECONDS"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	if cfg.Port != "10000" {
		t.Errorf("Port = %q; want 10000", cfg.Port)
	}
	if cfg.AIProvider != "openai" {
		t.Errorf("AIProvider = %q; want openai", cfg.AIProvider)
	}
	if cfg.MaxTokens != DefaultMaxTokens {
		t.Errorf("MaxTokens = %d; want %d", cfg.MaxTokens, DefaultMaxTokens)
	}
	if !reflect.DeepEqual(cfg.BlogTags, BlogTags) {
		t.Errorf("BlogTags = %v; want %v", cfg.BlogTags, BlogTags)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v; want 30s", cfg.HTTPTimeout)
	}
	if cfg.GenerationTimeout != 2*time.Minute {
		t.Errorf("GenerationTimeout = %v; want 2m", cfg.GenerationTimeout)
	}
	want := []string{"0 7 * * *", "0 8 * * 1"}
	if got := cfg.Schedules(); !reflect.DeepEqual(got, want) {
		t.Errorf("Schedules() = %v; want %v", got, want)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("FEED_SOURCES", " sneakernews , ,https://example.com/feed ")
	t.Setenv("GENERATION_MAX_TOKENS", "not-a-number")
	t.Setenv("AI_PROVIDER", "Cohere")
	t.Setenv("CRON_WEEKLY", "off")
	t.Setenv("CRON_DAILY", "")
	t.Setenv("COHERE_BASE_URL", "http://127.0.0.1:9000")
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "300")

	cfg := FromEnv()

	wantSources := []string{"sneakernews", "https://example.com/feed"}
	if !reflect.DeepEqual(cfg.FeedSources, wantSources) {
		t.Errorf("FeedSources = %v; want %v", cfg.FeedSources, wantSources)
	}
	if cfg.MaxTokens != DefaultMaxTokens {
		t.Errorf("MaxTokens = %d; want fallback %d", cfg.MaxTokens, DefaultMaxTokens)
	}
	if cfg.AIProvider != "cohere" {
		t.Errorf("AIProvider = %q; want cohere", cfg.AIProvider)
	}
	if got := cfg.Schedules(); !reflect.DeepEqual(got, []string{"0 7 * * *"}) {
		t.Errorf("Schedules() = %v; want daily only", got)
	}
	if cfg.CohereBaseURL != "http://127.0.0.1:9000" {
		t.Errorf("CohereBaseURL = %q", cfg.CohereBaseURL)
	}
	if cfg.GenerationTimeout != 5*time.Minute {
		t.Errorf("GenerationTimeout = %v; want 5m", cfg.GenerationTimeout)
	}
}
