package news

import (
	"log/slog"
	"strings"
)

// keywordExpansion widens a search term known to underperform on the news
// providers. Checked in order; the first matching term wins.
type keywordExpansion struct {
	term string

	// expanded replaces the keyword outright when non-empty. When empty,
	// suffix is appended to the caller's keyword instead.
	expanded string
	suffix   string
}

var keywordExpansions = []keywordExpansion{
	{term: "indian movies", expanded: "indian movies bollywood tollywood kollywood"},
	{term: "bollywood", expanded: "bollywood hindi cinema mumbai films"},
	{term: "tollywood", expanded: "tollywood telugu cinema hyderabad films"},
	{term: "kollywood", expanded: "kollywood tamil cinema chennai films"},
	{term: "movies", suffix: "bollywood hindi telugu tamil"},
	{term: "cinema", suffix: "indian cinema bollywood"},
}

// entertainmentTerms get regional context appended when no cinema expansion
// matched first.
var entertainmentTerms = []string{"entertainment", "celebrity", "actor", "actress"}

// EnhanceKeyword widens cinema and entertainment keywords for better recall
// on the providers. Unrelated keywords pass through unchanged.
func EnhanceKeyword(keyword string) string {
	lower := strings.ToLower(keyword)

	for _, rule := range keywordExpansions {
		if !strings.Contains(lower, rule.term) {
			continue
		}
		enhanced := rule.expanded
		if enhanced == "" {
			enhanced = keyword + " " + rule.suffix
		}
		slog.Info("enhanced search keyword",
			slog.String("keyword", keyword),
			slog.String("enhanced", enhanced))
		return enhanced
	}

	for _, term := range entertainmentTerms {
		if strings.Contains(lower, term) {
			enhanced := keyword + " india bollywood"
			slog.Info("added regional context to keyword",
				slog.String("keyword", keyword),
				slog.String("enhanced", enhanced))
			return enhanced
		}
	}

	return keyword
}
