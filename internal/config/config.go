package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pquin/tumblr-scraper/internal/domain"
)

// Config holds the application configuration. Credentials resolve with
// priority: explicit value > environment variable > empty.
type Config struct {
	// Tumblr API credentials
	ConsumerKey      string
	ConsumerSecret   string
	OAuthToken       string
	OAuthTokenSecret string

	// Collection configuration
	PageSize  int
	PageDelay time.Duration

	// Output configuration
	OutputDir string

	// Batch-mode targets used when no tag or blog is given on the command
	// line and no targets file is present.
	Targets []domain.Target
}

// DefaultTargets is the built-in batch-mode blog/keyword mapping.
var DefaultTargets = []domain.Target{
	{Blog: "blog1.tumblr.com", Keywords: []string{"keyword1", "keyword2", "keyword3"}},
	{Blog: "blog2.tumblr.com", Keywords: []string{"keyword1", "keyword2", "keyword3"}},
	{Blog: "blog3.tumblr.com", Keywords: []string{"keyword1", "keyword2", "keyword3"}},
}

// Load builds the configuration from environment variables with defaults.
func Load() *Config {
	pageSize, _ := strconv.Atoi(getEnv("TUMBLR_PAGE_SIZE", "20"))
	delayMS, _ := strconv.Atoi(getEnv("TUMBLR_PAGE_DELAY_MS", "1200"))

	return &Config{
		ConsumerKey:      os.Getenv("TUMBLR_CONSUMER_KEY"),
		ConsumerSecret:   os.Getenv("TUMBLR_CONSUMER_SECRET"),
		OAuthToken:       os.Getenv("TUMBLR_OAUTH_TOKEN"),
		OAuthTokenSecret: os.Getenv("TUMBLR_OAUTH_TOKEN_SECRET"),
		PageSize:         pageSize,
		PageDelay:        time.Duration(delayMS) * time.Millisecond,
		OutputDir:        getEnv("TUMBLR_OUTPUT_DIR", "output"),
		Targets:          DefaultTargets,
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
