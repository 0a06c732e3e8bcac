package news

import (
	"sort"
	"time"

	"news-digest/internal/domain/entity"
)

// Rank orders articles by country priority first (lower is better), then by
// publish time, newest first, and truncates the result to limit. Articles
// with unparsable timestamps sort last within their priority tier. The input
// slice is not modified.
func Rank(articles []entity.Article, limit int) []entity.Article {
	type ranked struct {
		article     entity.Article
		publishedAt time.Time
	}

	keyed := make([]ranked, len(articles))
	for i, a := range articles {
		keyed[i] = ranked{article: a, publishedAt: entity.ParsePublishedAt(a.PublishedAt)}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		if keyed[i].article.SourcePriority != keyed[j].article.SourcePriority {
			return keyed[i].article.SourcePriority < keyed[j].article.SourcePriority
		}
		return keyed[i].publishedAt.After(keyed[j].publishedAt)
	})

	if limit > 0 && len(keyed) > limit {
		keyed = keyed[:limit]
	}

	result := make([]entity.Article, len(keyed))
	for i, r := range keyed {
		result[i] = r.article
	}
	return result
}
