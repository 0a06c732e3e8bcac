package digest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"news-digest/internal/domain/entity"
)

var testNow = time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)

func enrichedArticle(title, content, publishedAt string, label entity.SentimentLabel) entity.EnrichedArticle {
	return entity.EnrichedArticle{
		Article: entity.Article{
			Title:       title,
			Content:     content,
			Source:      "TestWire",
			PublishedAt: publishedAt,
		},
		Summary:   "summary of " + title,
		Sentiment: entity.SentimentFor(label),
		Language:  "en",
	}
}

func TestTimeAgo(t *testing.T) {
	tests := []struct {
		name        string
		publishedAt string
		want        string
	}{
		{"empty is unknown", "", "Unknown time"},
		{"garbage is unknown", "not-a-date", "Unknown time"},
		{"25 hours is one day", "2025-08-30T11:00:00Z", "1 day ago"},
		{"three days", "2025-08-28T10:00:00Z", "3 days ago"},
		{"two hours", "2025-08-31T10:00:00Z", "2 hours ago"},
		{"one hour singular", "2025-08-31T10:30:00Z", "1 hour ago"},
		{"five minutes", "2025-08-31T11:55:00Z", "5 minutes ago"},
		{"under a minute is just now", "2025-08-31T11:59:30Z", "Just now"},
		{"no timezone suffix accepted", "2025-08-31 09:00:00", "3 hours ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgo(tt.publishedAt, testNow))
		})
	}
}

func TestComposeAt(t *testing.T) {
	t.Run("empty batch renders the no-results message", func(t *testing.T) {
		d := ComposeAt(nil, testNow)

		assert.Equal(t, emptyDigestMessage, d.FormattedResponse)
		assert.Zero(t, d.TotalArticles)
		assert.Empty(t, d.FollowUpSuggestions)
		assert.NotNil(t, d.Articles)
	})

	t.Run("renders ranked article blocks", func(t *testing.T) {
		articles := []entity.EnrichedArticle{
			enrichedArticle("Quantum leap", "a physics result", "2025-08-31T10:00:00Z", entity.SentimentPositive),
			enrichedArticle("Grid outage", "a power grid failure", "2025-08-30T10:00:00Z", entity.SentimentNegative),
		}

		d := ComposeAt(articles, testNow)

		assert.Equal(t, 2, d.TotalArticles)
		assert.True(t, strings.HasPrefix(d.FormattedResponse, "📰 **Latest News** 📰"))
		assert.Contains(t, d.FormattedResponse, "🔥 **1. Quantum leap**")
		assert.Contains(t, d.FormattedResponse, "🔥 **2. Grid outage**")
		assert.Contains(t, d.FormattedResponse, "📝 summary of Quantum leap")
		assert.Contains(t, d.FormattedResponse, "😊 **Sentiment:** Positive")
		assert.Contains(t, d.FormattedResponse, "😠 **Sentiment:** Negative")
		assert.Contains(t, d.FormattedResponse, "📰 **Source:** TestWire")
		assert.Contains(t, d.FormattedResponse, "🕒 **Published:** 2 hours ago")
		assert.Contains(t, d.FormattedResponse, "---")
	})

	t.Run("no separator after the last article", func(t *testing.T) {
		articles := []entity.EnrichedArticle{
			enrichedArticle("Solo story", "content", "2025-08-31T10:00:00Z", entity.SentimentNeutral),
		}

		d := ComposeAt(articles, testNow)

		body := d.FormattedResponse
		if i := strings.Index(body, "💡"); i >= 0 {
			body = body[:i]
		}
		assert.NotContains(t, body, "---")
	})

	t.Run("missing summary falls back to content", func(t *testing.T) {
		article := enrichedArticle("Bare", "raw body text", "2025-08-31T10:00:00Z", entity.SentimentNeutral)
		article.Summary = ""

		d := ComposeAt([]entity.EnrichedArticle{article}, testNow)

		assert.Contains(t, d.FormattedResponse, "📝 raw body text")
	})
}

func TestFollowUpSuggestions(t *testing.T) {
	t.Run("cinema content suggests regional topics", func(t *testing.T) {
		articles := []entity.EnrichedArticle{
			enrichedArticle("Bollywood box office", "a hindi release", "", entity.SentimentNeutral),
		}

		got := FollowUpSuggestions(articles)

		assert.Contains(t, got, "/news/topic/bollywood")
		lines := strings.Split(got, "\n")
		assert.LessOrEqual(t, len(lines), maxSuggestions)
	})

	t.Run("caps at three across groups", func(t *testing.T) {
		articles := []entity.EnrichedArticle{
			enrichedArticle("Cricket tech", "ai coverage of the cricket tournament", "", entity.SentimentNeutral),
		}

		got := FollowUpSuggestions(articles)

		assert.Len(t, strings.Split(got, "\n"), maxSuggestions)
	})

	t.Run("no trigger terms gets the default set", func(t *testing.T) {
		articles := []entity.EnrichedArticle{
			enrichedArticle("Crop report", "wheat yields", "", entity.SentimentNeutral),
		}

		got := FollowUpSuggestions(articles)

		assert.Contains(t, got, "Breaking News")
		assert.Contains(t, got, "World News")
	})

	t.Run("empty batch suggests nothing", func(t *testing.T) {
		assert.Empty(t, FollowUpSuggestions(nil))
	})
}
