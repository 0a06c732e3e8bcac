package entity

import (
	"fmt"
	"strings"
)

// DefaultKeyword is used when the caller supplies no search keyword.
const DefaultKeyword = "technology"

// DefaultLanguage is the output language when the caller specifies none.
const DefaultLanguage = "en"

// SupportedCategories is the fixed allow-list of news categories.
var SupportedCategories = []string{
	"general", "business", "entertainment", "health",
	"science", "sports", "technology",
}

// SupportedCountries is the fixed allow-list of country codes.
var SupportedCountries = []string{
	"us", "in", "uk", "fr", "de", "ca", "au", "jp", "kr", "cn", "br", "mx", "it", "es",
}

// SupportedLanguages is the fixed allow-list of output language codes.
var SupportedLanguages = []string{"en", "hi", "te", "ta", "bn", "fr", "es", "de"}

// LanguageNames maps supported language codes to display names.
var LanguageNames = map[string]string{
	"en": "English", "hi": "Hindi", "te": "Telugu", "ta": "Tamil",
	"bn": "Bengali", "fr": "French", "es": "Spanish", "de": "German",
}

// CountryNames maps supported country codes to display names.
var CountryNames = map[string]string{
	"us": "United States", "in": "India", "uk": "United Kingdom",
	"fr": "France", "de": "Germany", "ca": "Canada", "au": "Australia",
	"jp": "Japan", "kr": "South Korea", "cn": "China", "br": "Brazil",
	"mx": "Mexico", "it": "Italy", "es": "Spain",
}

// RequestParams is the validated, normalized caller intent for one pipeline
// run. It is immutable once constructed and discarded at end of request.
type RequestParams struct {
	Keyword string

	// Category is empty when the caller requested no category filter.
	Category string

	// CountryPriority is the ordered country preference list; index position
	// is the ranking weight (0 = most preferred). Empty means no preference.
	CountryPriority []string

	Language string
	PageSize int
}

// NewRequestParams validates and normalizes raw caller input into
// RequestParams. The country value accepts a comma-separated priority list.
// Values outside the enumerated allow-lists are rejected.
func NewRequestParams(keyword, category, country, language string, pageSize int) (RequestParams, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		keyword = DefaultKeyword
	}

	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" && !contains(SupportedCategories, category) {
		return RequestParams{}, &ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("invalid category %q, must be one of: %s", category, strings.Join(SupportedCategories, ", ")),
		}
	}

	var countries []string
	if country != "" {
		for _, c := range strings.Split(country, ",") {
			c = strings.ToLower(strings.TrimSpace(c))
			if c == "" {
				continue
			}
			if !contains(SupportedCountries, c) {
				return RequestParams{}, &ValidationError{
					Field:   "country",
					Message: fmt.Sprintf("invalid country code %q, must be one of: %s", c, strings.Join(SupportedCountries, ", ")),
				}
			}
			countries = append(countries, c)
		}
	}

	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = DefaultLanguage
	}
	if !contains(SupportedLanguages, language) {
		return RequestParams{}, &ValidationError{
			Field:   "language",
			Message: fmt.Sprintf("invalid language %q, must be one of: %s", language, strings.Join(SupportedLanguages, ", ")),
		}
	}

	if pageSize <= 0 {
		return RequestParams{}, &ValidationError{Field: "pageSize", Message: "page size must be positive"}
	}

	return RequestParams{
		Keyword:         keyword,
		Category:        category,
		CountryPriority: countries,
		Language:        language,
		PageSize:        pageSize,
	}, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
