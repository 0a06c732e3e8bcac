package enrich

import (
	"log/slog"
	"os"

	"news-digest/pkg/config"
)

// Backend identifiers accepted in ENRICHER_PROVIDER.
const (
	ProviderClaude   = "claude"
	ProviderOpenAI   = "openai"
	ProviderFallback = "fallback"
)

// Config holds enrichment configuration loaded from environment variables.
type Config struct {
	// Provider selects the enrichment backend. When empty, the backend is
	// auto-detected from available API keys.
	Provider string

	// SummaryLimit is the default maximum summary length in characters for
	// full article views. Compact views pass their own limit per call.
	SummaryLimit int

	// Parallelism bounds the number of articles enriched concurrently.
	Parallelism int

	// RateLimit bounds enrichment starts per second across the process.
	RateLimit float64

	AnthropicKey string
	OpenAIKey    string
}

// LoadConfig loads enrichment configuration from environment variables.
// Out-of-range values fall back to defaults with a warning log.
//
// Environment variables:
//   - ENRICHER_PROVIDER: claude | openai | fallback (default: auto-detect)
//   - ENRICH_SUMMARY_LIMIT: summary character limit (default: 150, range: 40-5000)
//   - ENRICH_PARALLELISM: concurrent enrichment workers (default: 5)
//   - ENRICH_RATE_LIMIT: enrichment starts per second (default: 5)
//   - ANTHROPIC_API_KEY, OPENAI_API_KEY: backend credentials
func LoadConfig() Config {
	const (
		defaultSummaryLimit = 150
		minSummaryLimit     = 40
		maxSummaryLimit     = 5000
	)

	summaryLimit := config.GetEnvInt("ENRICH_SUMMARY_LIMIT", defaultSummaryLimit)
	if summaryLimit < minSummaryLimit || summaryLimit > maxSummaryLimit {
		slog.Warn("ENRICH_SUMMARY_LIMIT out of valid range, using default",
			slog.Int("value", summaryLimit),
			slog.Int("min", minSummaryLimit),
			slog.Int("max", maxSummaryLimit),
			slog.Int("default", defaultSummaryLimit))
		summaryLimit = defaultSummaryLimit
	}

	parallelism := config.GetEnvInt("ENRICH_PARALLELISM", 5)
	if parallelism < 1 {
		slog.Warn("ENRICH_PARALLELISM must be positive, using default",
			slog.Int("value", parallelism),
			slog.Int("default", 5))
		parallelism = 5
	}

	rateLimit := config.GetEnvInt("ENRICH_RATE_LIMIT", 5)
	if rateLimit < 1 {
		slog.Warn("ENRICH_RATE_LIMIT must be positive, using default",
			slog.Int("value", rateLimit),
			slog.Int("default", 5))
		rateLimit = 5
	}

	return Config{
		Provider:     config.GetEnvString("ENRICHER_PROVIDER", ""),
		SummaryLimit: summaryLimit,
		Parallelism:  parallelism,
		RateLimit:    float64(rateLimit),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
	}
}

// NewEnricher selects and constructs the enrichment backend for the process.
// Selection happens once at startup. An explicitly requested AI backend with
// no API key, or an unknown provider name, degrades to the rule-based engine
// with a warning rather than failing startup.
func NewEnricher(cfg Config) Enricher {
	switch cfg.Provider {
	case ProviderClaude:
		if cfg.AnthropicKey == "" {
			slog.Warn("ENRICHER_PROVIDER=claude but ANTHROPIC_API_KEY is not set, using rule-based enrichment")
			return NewFallback()
		}
		return NewClaude(cfg.AnthropicKey)
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			slog.Warn("ENRICHER_PROVIDER=openai but OPENAI_API_KEY is not set, using rule-based enrichment")
			return NewFallback()
		}
		return NewOpenAI(cfg.OpenAIKey)
	case ProviderFallback:
		return NewFallback()
	case "":
		// Auto-detect from available credentials.
		if cfg.AnthropicKey != "" {
			return NewClaude(cfg.AnthropicKey)
		}
		if cfg.OpenAIKey != "" {
			return NewOpenAI(cfg.OpenAIKey)
		}
		slog.Info("no AI API key configured, using rule-based enrichment")
		return NewFallback()
	default:
		slog.Warn("unknown ENRICHER_PROVIDER, using rule-based enrichment",
			slog.String("provider", cfg.Provider))
		return NewFallback()
	}
}
