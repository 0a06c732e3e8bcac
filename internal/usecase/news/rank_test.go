package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-digest/internal/domain/entity"
)

func TestRank(t *testing.T) {
	t.Run("priority tier beats recency", func(t *testing.T) {
		articles := []entity.Article{
			{Title: "old but priority 0", PublishedAt: "2025-08-01T00:00:00Z", SourcePriority: 0},
			{Title: "fresh but unranked", PublishedAt: "2025-08-30T00:00:00Z", SourcePriority: entity.UnrankedPriority},
			{Title: "fresh priority 1", PublishedAt: "2025-08-30T00:00:00Z", SourcePriority: 1},
		}

		ranked := Rank(articles, 10)

		require.Len(t, ranked, 3)
		assert.Equal(t, "old but priority 0", ranked[0].Title)
		assert.Equal(t, "fresh priority 1", ranked[1].Title)
		assert.Equal(t, "fresh but unranked", ranked[2].Title)
	})

	t.Run("newest first within a tier", func(t *testing.T) {
		articles := []entity.Article{
			{Title: "older", PublishedAt: "2025-08-29T08:00:00Z", SourcePriority: 0},
			{Title: "newer", PublishedAt: "2025-08-30T08:00:00Z", SourcePriority: 0},
		}

		ranked := Rank(articles, 10)

		assert.Equal(t, "newer", ranked[0].Title)
		assert.Equal(t, "older", ranked[1].Title)
	})

	t.Run("unparsable timestamp sorts last in its tier", func(t *testing.T) {
		articles := []entity.Article{
			{Title: "no date", PublishedAt: "", SourcePriority: 0},
			{Title: "garbage date", PublishedAt: "yesterday-ish", SourcePriority: 0},
			{Title: "dated", PublishedAt: "2025-08-30T08:00:00Z", SourcePriority: 0},
		}

		ranked := Rank(articles, 10)

		assert.Equal(t, "dated", ranked[0].Title)
	})

	t.Run("truncates to limit after sorting", func(t *testing.T) {
		articles := []entity.Article{
			{Title: "a", PublishedAt: "2025-08-28T00:00:00Z", SourcePriority: entity.UnrankedPriority},
			{Title: "b", PublishedAt: "2025-08-30T00:00:00Z", SourcePriority: entity.UnrankedPriority},
			{Title: "c", PublishedAt: "2025-08-29T00:00:00Z", SourcePriority: entity.UnrankedPriority},
		}

		ranked := Rank(articles, 2)

		require.Len(t, ranked, 2)
		assert.Equal(t, "b", ranked[0].Title)
		assert.Equal(t, "c", ranked[1].Title)
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		articles := []entity.Article{
			{Title: "second", PublishedAt: "2025-08-29T00:00:00Z", SourcePriority: 1},
			{Title: "first", PublishedAt: "2025-08-30T00:00:00Z", SourcePriority: 0},
		}

		_ = Rank(articles, 10)

		assert.Equal(t, "second", articles[0].Title)
	})

	t.Run("supports the second timestamp format", func(t *testing.T) {
		articles := []entity.Article{
			{Title: "space format newer", PublishedAt: "2025-08-30 10:00:00", SourcePriority: 0},
			{Title: "iso older", PublishedAt: "2025-08-29T10:00:00Z", SourcePriority: 0},
		}

		ranked := Rank(articles, 10)

		assert.Equal(t, "space format newer", ranked[0].Title)
	})
}
