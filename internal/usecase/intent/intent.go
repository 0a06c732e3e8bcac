// Package intent extracts a structured news query from free-form text.
// Matching is table-driven substring scanning; no model is involved, so
// extraction is deterministic and instant.
package intent

import "strings"

// Intent names returned by Extract.
const (
	IntentGetNews = "get_news"
	IntentUnknown = "unknown"
)

// Result is the outcome of intent extraction. Params fields are empty when
// the text did not mention them.
type Result struct {
	Intent string
	Params Params
}

// Params are the query parameters recognized in the text.
type Params struct {
	Keyword  string
	Language string
	Country  string
}

// newsTriggers are the words that mark a text as a news request.
var newsTriggers = []string{
	"news", "latest", "update", "headlines", "breaking",
	"show", "get", "tell", "give",
}

// topicKeywords maps a canonical search keyword to the phrases that imply
// it. Scanned in order; the first topic with any matching phrase wins.
var topicKeywords = []struct {
	topic   string
	phrases []string
}{
	{"technology", []string{"tech", "technology", "artificial intelligence", "ai", "software", "computer"}},
	{"sports", []string{"sports", "cricket", "football", "soccer", "tennis", "basketball"}},
	{"bollywood", []string{"bollywood", "hindi movies", "mumbai films"}},
	{"politics", []string{"politics", "election", "government", "minister"}},
	{"health", []string{"health", "medical", "covid", "vaccine", "hospital"}},
	{"business", []string{"business", "economy", "stock", "market", "company"}},
}

// languageNames maps spoken language names to their request codes.
var languageNames = []struct {
	name string
	code string
}{
	{"hindi", "hi"},
	{"telugu", "te"},
	{"tamil", "ta"},
	{"bengali", "bn"},
	{"french", "fr"},
	{"spanish", "es"},
	{"german", "de"},
}

// countryNames maps country mentions to their request codes.
var countryNames = []struct {
	name string
	code string
}{
	{"india", "in"},
	{"indian", "in"},
	{"america", "us"},
	{"usa", "us"},
	{"britain", "uk"},
	{"uk", "uk"},
	{"france", "fr"},
	{"germany", "de"},
}

// Extract scans text for a news request and its parameters. Text without a
// news trigger word yields IntentUnknown.
func Extract(text string) Result {
	text = strings.ToLower(strings.TrimSpace(text))

	triggered := false
	for _, trigger := range newsTriggers {
		if strings.Contains(text, trigger) {
			triggered = true
			break
		}
	}
	if !triggered {
		return Result{Intent: IntentUnknown}
	}

	var params Params

	for _, entry := range topicKeywords {
		for _, phrase := range entry.phrases {
			if strings.Contains(text, phrase) {
				params.Keyword = entry.topic
				break
			}
		}
		if params.Keyword != "" {
			break
		}
	}

	for _, entry := range languageNames {
		if strings.Contains(text, entry.name) {
			params.Language = entry.code
			break
		}
	}

	for _, entry := range countryNames {
		if strings.Contains(text, entry.name) {
			params.Country = entry.code
			break
		}
	}

	return Result{Intent: IntentGetNews, Params: params}
}
