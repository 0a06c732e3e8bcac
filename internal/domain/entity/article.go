// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and EnrichedArticle, along
// with their validation rules and domain-specific errors.
package entity

import "time"

// UnrankedPriority is the source priority assigned to articles that were not
// fetched under a country-priority query. It is greater than any explicit
// priority index, so unranked articles always sort after prioritized ones.
const UnrankedPriority = 999

// Article represents a news article as normalized from a provider response.
// Title and Content are guaranteed non-empty once an article has passed
// adapter-level filtering.
type Article struct {
	Title       string
	Content     string
	Source      string
	URL         string
	PublishedAt string

	// SourcePriority is the country-priority rank assigned by the aggregator.
	// Lower means higher priority; UnrankedPriority means no preference.
	SourcePriority int
}

// Valid reports whether the article is admissible into the pipeline.
// Provider items missing a title or content are dropped at the adapter boundary.
func (a Article) Valid() bool {
	return a.Title != "" && a.Content != ""
}

// EnrichedArticle is an Article augmented with the outputs of the enrichment
// pipeline. It is owned by a single request and never shared across requests.
type EnrichedArticle struct {
	Article

	Summary   string
	Sentiment Sentiment
	Language  string
}

// Sentiment is a 3-bucket sentiment classification with a display glyph.
type Sentiment struct {
	Label SentimentLabel
	Emoji string
}

// SentimentLabel enumerates the supported sentiment classes.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// IsValid reports whether the label is one of the supported sentiment classes.
func (l SentimentLabel) IsValid() bool {
	switch l {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// SentimentFor returns the Sentiment value for a label, pairing it with its
// display glyph. Unknown labels map to neutral.
func SentimentFor(label SentimentLabel) Sentiment {
	switch label {
	case SentimentPositive:
		return Sentiment{Label: SentimentPositive, Emoji: "😊"}
	case SentimentNegative:
		return Sentiment{Label: SentimentNegative, Emoji: "😠"}
	default:
		return Sentiment{Label: SentimentNeutral, Emoji: "😐"}
	}
}

// ParsePublishedAt parses a provider publish timestamp. It accepts ISO-8601
// with or without a timezone suffix and the "YYYY-MM-DD HH:MM:SS" fallback
// used by some providers. Empty or unparsable timestamps return the zero
// time, which sorts as the earliest possible instant.
func ParsePublishedAt(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
