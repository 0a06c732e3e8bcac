// Package enrich implements article enrichment: summarization, sentiment
// classification, and translation. Two classes of backend exist behind the
// Enricher interface: AI-backed engines (Claude, OpenAI) and a deterministic
// rule-based engine that needs no network. The backend is selected once at
// startup; per-article failures degrade to truncation and neutral sentiment
// instead of failing the request.
package enrich

import (
	"context"
	"strings"

	"news-digest/internal/domain/entity"
)

// Input caps keep a single slow or oversized document from dominating an
// enrichment pass. Values match the token budgets of the models used.
const (
	summarizeInputLimit = 2048
	sentimentInputLimit = 512
)

// minSummarizeLength is the threshold below which content is returned as-is
// instead of being sent to an AI backend.
const minSummarizeLength = 50

// Enricher produces enrichment outputs for a single piece of text.
// Implementations must be safe for concurrent use.
type Enricher interface {
	// Name identifies the backend for logging and metrics.
	Name() string

	// Summarize returns a summary of text no longer than maxLength characters.
	Summarize(ctx context.Context, text string, maxLength int) (string, error)

	// Sentiment classifies text into one of the three sentiment buckets.
	Sentiment(ctx context.Context, text string) (entity.Sentiment, error)

	// Translate renders text in the target language. Implementations return
	// the input unchanged for "en" and for languages they do not cover.
	Translate(ctx context.Context, text, language string) (string, error)
}

// truncate caps s at limit bytes. Provider text is ASCII-dominant so a byte
// cap is close enough to a character cap for budget purposes.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// parseSentimentLabel normalizes a model's sentiment answer to a label.
// Models answer with a bare class word, a label_N index, or occasionally a
// short sentence containing the class word. Anything unrecognized is neutral.
func parseSentimentLabel(answer string) entity.SentimentLabel {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	normalized = strings.Trim(normalized, ".,!?\"'")

	switch normalized {
	case "positive", "label_2":
		return entity.SentimentPositive
	case "negative", "label_0":
		return entity.SentimentNegative
	case "neutral", "label_1":
		return entity.SentimentNeutral
	}

	switch {
	case strings.Contains(normalized, "positive"):
		return entity.SentimentPositive
	case strings.Contains(normalized, "negative"):
		return entity.SentimentNegative
	}
	return entity.SentimentNeutral
}
