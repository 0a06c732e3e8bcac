package enrich

import (
	"context"
	"strings"

	"news-digest/internal/domain/entity"
)

// Bag-of-words indicator lists for the rule-based sentiment classifier.
var (
	positiveWords = []string{
		"good", "great", "excellent", "amazing", "wonderful", "fantastic",
		"breakthrough", "success", "win", "achievement", "progress", "growth",
		"innovation", "advance", "improvement", "positive", "benefit",
	}

	negativeWords = []string{
		"bad", "terrible", "awful", "crisis", "problem", "issue", "concern",
		"decline", "drop", "fall", "crash", "failure", "loss", "damage",
		"threat", "risk", "danger", "negative", "controversy",
	}
)

// Fallback is the deterministic rule-based enrichment engine. It needs no
// network or credentials and is the backend of last resort when no AI API
// key is configured. All methods succeed; degradation never cascades.
type Fallback struct{}

// NewFallback creates the rule-based enrichment engine.
func NewFallback() *Fallback {
	return &Fallback{}
}

func (f *Fallback) Name() string { return ProviderFallback }

// Summarize returns leading whole sentences of text that fit within
// maxLength. When not even the first sentence fits, the text is hard
// truncated with an ellipsis.
func (f *Fallback) Summarize(_ context.Context, text string, maxLength int) (string, error) {
	if text == "" || len(text) <= maxLength {
		return text, nil
	}

	var b strings.Builder
	for _, sentence := range strings.Split(text, ". ") {
		if b.Len()+len(sentence)+2 > maxLength {
			break
		}
		b.WriteString(sentence)
		b.WriteString(". ")
	}

	if b.Len() == 0 {
		return text[:maxLength-3] + "...", nil
	}
	return strings.TrimSpace(b.String()), nil
}

// Sentiment classifies text by counting positive and negative indicator
// words. Ties and indicator-free text are neutral.
func (f *Fallback) Sentiment(_ context.Context, text string) (entity.Sentiment, error) {
	if text == "" {
		return entity.SentimentFor(entity.SentimentNeutral), nil
	}

	lower := strings.ToLower(text)
	positive, negative := 0, 0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return entity.SentimentFor(entity.SentimentPositive), nil
	case negative > positive:
		return entity.SentimentFor(entity.SentimentNegative), nil
	default:
		return entity.SentimentFor(entity.SentimentNeutral), nil
	}
}

// Translate applies word-level dictionary substitution. Only Telugu and
// Hindi have dictionaries; other languages return the text unchanged.
func (f *Fallback) Translate(_ context.Context, text, language string) (string, error) {
	if text == "" || language == "en" {
		return text, nil
	}
	dict := dictionaryFor(language)
	if dict == nil {
		return text, nil
	}
	return translateWords(text, dict), nil
}
