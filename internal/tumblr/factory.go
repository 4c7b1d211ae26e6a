package tumblr

import (
	"os"

	"github.com/pquin/tumblr-scraper/internal/config"
	"github.com/pquin/tumblr-scraper/internal/domain"
)

// NewFromConfig selects the client implementation. TUMBLR_MODE=mock gives
// canned data for local runs; anything else builds the real API client
// from the configured credentials.
func NewFromConfig(cfg *config.Config) (domain.Client, error) {
	if os.Getenv("TUMBLR_MODE") == "mock" {
		return NewMockClient(), nil
	}
	return NewClient(Credentials{
		ConsumerKey:      cfg.ConsumerKey,
		ConsumerSecret:   cfg.ConsumerSecret,
		OAuthToken:       cfg.OAuthToken,
		OAuthTokenSecret: cfg.OAuthTokenSecret,
	})
}
