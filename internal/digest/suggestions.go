package digest

import (
	"strings"

	"news-digest/internal/domain/entity"
)

// maxSuggestions caps how many follow-up links one digest carries.
const maxSuggestions = 3

// suggestionGroup ties content trigger terms to ready-made follow-up links.
// Groups are scanned in a fixed order so digests stay stable across runs.
type suggestionGroup struct {
	terms []string
	links []string
}

var suggestionGroups = []suggestionGroup{
	{
		terms: []string{"bollywood", "tollywood", "kollywood", "indian", "hindi", "telugu", "tamil"},
		links: []string{
			"🎬 [More Bollywood News](/news/topic/bollywood?language=hi&country=in)",
			"🎭 [Telugu Cinema Updates](/news/topic/tollywood?language=te&country=in)",
			"🎪 [Tamil Movies News](/news/topic/kollywood?language=ta&country=in)",
		},
	},
	{
		terms: []string{"ai", "artificial intelligence", "machine learning", "tech"},
		links: []string{
			"🤖 [More AI News](/news/topic/artificial-intelligence?category=technology)",
			"💻 [Tech Innovations](/news/topic/technology-innovation?language=en)",
		},
	},
	{
		terms: []string{"cricket", "football", "sports", "match", "tournament"},
		links: []string{
			"🏏 [Cricket Updates](/news/topic/cricket?country=in,uk,au)",
			"⚽ [Football News](/news/topic/football?country=us,uk,de)",
		},
	},
	{
		terms: []string{"movie", "film", "actor", "actress", "celebrity"},
		links: []string{
			"🌟 [Celebrity News](/news/topic/celebrity?category=entertainment)",
			"🎥 [Movie Reviews](/news/topic/movie-reviews?language=en)",
		},
	},
}

var defaultSuggestions = []string{
	"🔥 [Breaking News](/news/topic/breaking-news?language=en)",
	"🇮🇳 [India News](/news?country=in&language=hi)",
	"🌍 [World News](/news?country=us,uk,fr&language=en)",
}

// FollowUpSuggestions builds follow-up topic links by scanning the combined
// article text for trigger terms. Articles touching no group get the default
// set; an empty batch gets nothing.
func FollowUpSuggestions(articles []entity.EnrichedArticle) string {
	if len(articles) == 0 {
		return ""
	}

	var b strings.Builder
	for _, a := range articles {
		b.WriteString(a.Title)
		b.WriteString(" ")
		b.WriteString(a.Content)
		b.WriteString(" ")
	}
	corpus := strings.ToLower(b.String())

	var links []string
	for _, group := range suggestionGroups {
		for _, term := range group.terms {
			if strings.Contains(corpus, term) {
				links = append(links, group.links...)
				break
			}
		}
	}

	if len(links) == 0 {
		links = defaultSuggestions
	}
	if len(links) > maxSuggestions {
		links = links[:maxSuggestions]
	}
	return strings.Join(links, "\n")
}
