package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the pipeline and its entry points read from the environment.
type Config struct {
	Port string

	// Generation
	AIProvider    string
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	CohereKey     string
	CohereModel   string
	CohereBaseURL string
	MaxTokens     int

	// GenerationTimeout bounds a single completion call; feed and page fetches use HTTPTimeout
	GenerationTimeout time.Duration

	// Feed selection
	FeedSources []string
	Keywords    []string

	// Storefront
	ShopifyStore      string
	ShopifyToken      string
	ShopifyBlogID     string
	ShopifyAPIVersion string
	BlogAuthor        string
	BlogTags          []string

	// Scheduling
	CronDaily  string
	CronWeekly string

	HTTPTimeout time.Duration
	UserAgent   string
}

// Load reads .env (if present) and the process environment into a Config.
func Load() Config {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() Config {
	return Config{
		Port: getEnvOrDefault("PORT", "10000"),

		AIProvider:    strings.ToLower(getEnvOrDefault("AI_PROVIDER", "openai")),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", DefaultOpenAIModel),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		CohereKey:     os.Getenv("COHERE_API_KEY"),
		CohereModel:   getEnvOrDefault("COHERE_MODEL", DefaultCohereModel),
		CohereBaseURL: os.Getenv("COHERE_BASE_URL"),
		MaxTokens:     getEnvAsInt("GENERATION_MAX_TOKENS", DefaultMaxTokens),

		GenerationTimeout: time.Duration(getEnvAsInt("GENERATION_TIMEOUT_SECONDS", 120)) * time.Second,

		FeedSources: getEnvAsList("FEED_SOURCES", []string{"sneakernews", "nicekicks", "hypebeast"}),
		Keywords:    getEnvAsList("SNEAKER_KEYWORDS", []string{"sneaker", "nike", "jordan", "adidas", "yeezy", "new balance", "dunk"}),

		ShopifyStore:      os.Getenv("SHOPIFY_STORE"),
		ShopifyToken:      os.Getenv("SHOPIFY_ACCESS_TOKEN"),
		ShopifyBlogID:     os.Getenv("SHOPIFY_BLOG_ID"),
		ShopifyAPIVersion: getEnvOrDefault("SHOPIFY_API_VERSION", "2024-10"),
		BlogAuthor:        getEnvOrDefault("BLOG_AUTHOR", "Sneaker Desk"),
		BlogTags:          getEnvAsList("BLOG_TAGS", BlogTags),

		CronDaily:  getEnvOrDefault("CRON_DAILY", "0 7 * * *"),
		CronWeekly: getEnvOrDefault("CRON_WEEKLY", "0 8 * * 1"),

		HTTPTimeout: time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		UserAgent:   getEnvOrDefault("USER_AGENT", "Mozilla/5.0 (compatible; SneakerBlogBot/1.0)"),
	}
}

// Schedules returns the enabled cron expressions in registration order.
// A schedule set to "off" is skipped.
func (c Config) Schedules() []string {
	var out []string
	for _, s := range []string{c.CronDaily, c.CronWeekly} {
		s = strings.TrimSpace(s)
		if s != "" && !strings.EqualFold(s, "off") {
			out = append(out, s)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}

// getEnvAsList splits a comma-separated variable, dropping blanks.
func getEnvAsList(key string, defaultVal []string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), defaultVal...)
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaultVal...)
	}
	return out
}
