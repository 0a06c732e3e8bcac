// Package digest renders enriched articles into chat-ready markdown. The
// output pairs the structured article data with a single formatted string a
// chat surface can display verbatim.
package digest

import (
	"fmt"
	"strings"
	"time"

	"news-digest/internal/domain/entity"
)

// emptyDigestMessage is the formatted response for a run with no results.
const emptyDigestMessage = "📰 **No news articles found** 📰\n\n" +
	"Try searching with different keywords or check back later for fresh content!"

// Digest is the chat-ready rendering of one pipeline run.
type Digest struct {
	Articles            []entity.EnrichedArticle
	FormattedResponse   string
	TotalArticles       int
	Timestamp           time.Time
	FollowUpSuggestions string
}

// Compose renders articles into a digest timestamped with the current time.
func Compose(articles []entity.EnrichedArticle) Digest {
	return ComposeAt(articles, time.Now().UTC())
}

// ComposeAt renders articles into a digest relative to a fixed instant.
// Article ages and the digest timestamp both derive from now.
func ComposeAt(articles []entity.EnrichedArticle, now time.Time) Digest {
	if len(articles) == 0 {
		return Digest{
			Articles:          []entity.EnrichedArticle{},
			FormattedResponse: emptyDigestMessage,
			Timestamp:         now,
		}
	}

	lines := []string{"📰 **Latest News** 📰\n"}

	for i, article := range articles {
		summary := article.Summary
		if summary == "" {
			summary = article.Content
		}
		source := article.Source
		if source == "" {
			source = "Unknown Source"
		}

		lines = append(lines,
			fmt.Sprintf("🔥 **%d. %s**\n", i+1, article.Title),
			fmt.Sprintf("📝 %s\n", summary),
			fmt.Sprintf("%s **Sentiment:** %s\n", article.Sentiment.Emoji, titleCase(string(article.Sentiment.Label))),
			fmt.Sprintf("📰 **Source:** %s\n", source),
			fmt.Sprintf("🕒 **Published:** %s\n", TimeAgo(article.PublishedAt, now)),
			"---\n",
		)
	}

	// Drop the trailing separator.
	lines = lines[:len(lines)-1]

	formatted := strings.Join(lines, "\n")

	suggestions := FollowUpSuggestions(articles)
	if suggestions != "" {
		formatted += "\n\n💡 **More Topics You Might Like:**\n" + suggestions
	}

	return Digest{
		Articles:            articles,
		FormattedResponse:   formatted,
		TotalArticles:       len(articles),
		Timestamp:           now,
		FollowUpSuggestions: suggestions,
	}
}

func titleCase(s string) string {
	if s == "" {
		return "Neutral"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
