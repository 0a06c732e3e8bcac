package enrich

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-digest/internal/domain/entity"
)

// stubEnricher is a scriptable Enricher for engine tests.
type stubEnricher struct {
	summarizeErr error
	sentimentErr error
	translateErr error
	sentiment    entity.SentimentLabel
}

func (s *stubEnricher) Name() string { return "stub" }

func (s *stubEnricher) Summarize(_ context.Context, text string, _ int) (string, error) {
	if s.summarizeErr != nil {
		return "", s.summarizeErr
	}
	return "summary of " + text, nil
}

func (s *stubEnricher) Sentiment(_ context.Context, _ string) (entity.Sentiment, error) {
	if s.sentimentErr != nil {
		return entity.Sentiment{}, s.sentimentErr
	}
	label := s.sentiment
	if label == "" {
		label = entity.SentimentPositive
	}
	return entity.SentimentFor(label), nil
}

func (s *stubEnricher) Translate(_ context.Context, text, language string) (string, error) {
	if s.translateErr != nil {
		return "", s.translateErr
	}
	return "[" + language + "] " + text, nil
}

func testEngineConfig() Config {
	return Config{SummaryLimit: 150, Parallelism: 3, RateLimit: 1000}
}

func testArticles(n int) []entity.Article {
	articles := make([]entity.Article, n)
	for i := range articles {
		articles[i] = entity.Article{
			Title:   fmt.Sprintf("title %d", i),
			Content: fmt.Sprintf("content %d", i),
		}
	}
	return articles
}

func TestEngine_EnrichAll(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves input order under concurrency", func(t *testing.T) {
		engine := NewEngine(&stubEnricher{}, testEngineConfig())

		enriched := engine.EnrichAll(ctx, testArticles(10), "en", 150)

		require.Len(t, enriched, 10)
		for i, article := range enriched {
			assert.Equal(t, fmt.Sprintf("title %d", i), article.Title)
			assert.Equal(t, fmt.Sprintf("summary of content %d", i), article.Summary)
			assert.Equal(t, entity.SentimentPositive, article.Sentiment.Label)
			assert.Equal(t, "en", article.Language)
		}
	})

	t.Run("empty batch returns nil", func(t *testing.T) {
		engine := NewEngine(&stubEnricher{}, testEngineConfig())
		assert.Nil(t, engine.EnrichAll(ctx, nil, "en", 150))
	})

	t.Run("translates summary for non-english language", func(t *testing.T) {
		engine := NewEngine(&stubEnricher{}, testEngineConfig())

		enriched := engine.EnrichAll(ctx, testArticles(1), "hi", 150)

		require.Len(t, enriched, 1)
		assert.Equal(t, "[hi] summary of content 0", enriched[0].Summary)
		assert.Equal(t, "hi", enriched[0].Language)
	})

	t.Run("summarize failure degrades to content excerpt", func(t *testing.T) {
		engine := NewEngine(&stubEnricher{summarizeErr: errors.New("api down")}, testEngineConfig())

		long := entity.Article{Title: "t", Content: strings.Repeat("x", 300)}
		enriched := engine.EnrichAll(ctx, []entity.Article{long}, "en", 150)

		require.Len(t, enriched, 1)
		assert.Len(t, enriched[0].Summary, degradedSummaryLimit+3)
		assert.True(t, strings.HasSuffix(enriched[0].Summary, "..."))
	})

	t.Run("sentiment failure degrades to neutral without losing summary", func(t *testing.T) {
		engine := NewEngine(&stubEnricher{sentimentErr: errors.New("api down")}, testEngineConfig())

		enriched := engine.EnrichAll(ctx, testArticles(1), "en", 150)

		require.Len(t, enriched, 1)
		assert.Equal(t, "summary of content 0", enriched[0].Summary)
		assert.Equal(t, entity.SentimentNeutral, enriched[0].Sentiment.Label)
	})

	t.Run("translate failure keeps untranslated summary", func(t *testing.T) {
		engine := NewEngine(&stubEnricher{translateErr: errors.New("api down")}, testEngineConfig())

		enriched := engine.EnrichAll(ctx, testArticles(1), "te", 150)

		require.Len(t, enriched, 1)
		assert.Equal(t, "summary of content 0", enriched[0].Summary)
	})
}

func TestNewEnricher(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "explicit fallback",
			cfg:  Config{Provider: ProviderFallback},
			want: ProviderFallback,
		},
		{
			name: "claude requested without key degrades to fallback",
			cfg:  Config{Provider: ProviderClaude},
			want: ProviderFallback,
		},
		{
			name: "openai requested without key degrades to fallback",
			cfg:  Config{Provider: ProviderOpenAI},
			want: ProviderFallback,
		},
		{
			name: "unknown provider degrades to fallback",
			cfg:  Config{Provider: "bard"},
			want: ProviderFallback,
		},
		{
			name: "auto-detect without keys is fallback",
			cfg:  Config{},
			want: ProviderFallback,
		},
		{
			name: "auto-detect prefers anthropic key",
			cfg:  Config{AnthropicKey: "sk-ant-test", OpenAIKey: "sk-test"},
			want: ProviderClaude,
		},
		{
			name: "auto-detect uses openai key when anthropic absent",
			cfg:  Config{OpenAIKey: "sk-test"},
			want: ProviderOpenAI,
		},
		{
			name: "explicit claude with key",
			cfg:  Config{Provider: ProviderClaude, AnthropicKey: "sk-ant-test"},
			want: ProviderClaude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewEnricher(tt.cfg).Name())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfig()
		assert.Equal(t, 150, cfg.SummaryLimit)
		assert.Equal(t, 5, cfg.Parallelism)
		assert.Equal(t, 5.0, cfg.RateLimit)
	})

	t.Run("out of range summary limit falls back to default", func(t *testing.T) {
		t.Setenv("ENRICH_SUMMARY_LIMIT", "10")
		cfg := LoadConfig()
		assert.Equal(t, 150, cfg.SummaryLimit)
	})

	t.Run("valid overrides applied", func(t *testing.T) {
		t.Setenv("ENRICH_SUMMARY_LIMIT", "300")
		t.Setenv("ENRICH_PARALLELISM", "2")
		cfg := LoadConfig()
		assert.Equal(t, 300, cfg.SummaryLimit)
		assert.Equal(t, 2, cfg.Parallelism)
	})
}
