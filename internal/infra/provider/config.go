package provider

import (
	"time"

	"news-digest/pkg/config"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultPageSize = 10
	minPageSize     = 1
	maxPageSize     = 50

	defaultNewsAPIBaseURL = "https://newsapi.org/v2/everything"
	defaultGNewsBaseURL   = "https://gnews.io/api/v4/search"
)

// Config holds configuration shared by the news provider adapters.
// Configuration is loaded from environment variables with fallback to defaults.
type Config struct {
	// NewsAPIKey authenticates against NewsAPI. Empty disables the adapter.
	NewsAPIKey string

	// GNewsKey authenticates against GNews. Empty disables the adapter.
	GNewsKey string

	// Timeout bounds a single outbound provider call.
	Timeout time.Duration

	// PageSize is the per-provider result page size requested upstream.
	// Valid range: 1-50. Default: 10.
	PageSize int

	// Base URLs are overridable for tests.
	NewsAPIBaseURL string
	GNewsBaseURL   string
}

// LoadConfig loads provider configuration from environment variables.
// An out-of-range PROVIDER_PAGE_SIZE falls back to the default.
//
// Environment variables:
//   - NEWS_API_KEY: NewsAPI credential
//   - GNEWS_API_KEY: GNews credential
//   - PROVIDER_TIMEOUT: per-call timeout (default: 10s)
//   - PROVIDER_PAGE_SIZE: upstream page size (default: 10, range: 1-50)
func LoadConfig() Config {
	pageSize := config.GetEnvInt("PROVIDER_PAGE_SIZE", defaultPageSize)
	if pageSize < minPageSize || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return Config{
		NewsAPIKey:     config.GetEnvString("NEWS_API_KEY", ""),
		GNewsKey:       config.GetEnvString("GNEWS_API_KEY", ""),
		Timeout:        config.GetEnvDuration("PROVIDER_TIMEOUT", defaultTimeout),
		PageSize:       pageSize,
		NewsAPIBaseURL: config.GetEnvString("NEWSAPI_BASE_URL", defaultNewsAPIBaseURL),
		GNewsBaseURL:   config.GetEnvString("GNEWS_BASE_URL", defaultGNewsBaseURL),
	}
}
