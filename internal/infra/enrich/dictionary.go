package enrich

import "strings"

// Word-level dictionaries for the rule-based translation path. Coverage is
// limited to common news vocabulary; words without an entry pass through
// unchanged.
var (
	teluguTerms = map[string]string{
		"news":       "వార్తలు",
		"latest":     "తాజా",
		"breaking":   "ఎక్కడిక",
		"technology": "సాంకేతికత",
		"sports":     "క్రీడలు",
		"politics":   "రాజకీయాలు",
		"business":   "వ్యాపారం",
		"health":     "ఆరోగ్యం",
		"india":      "భారతదేశం",
		"cricket":    "క్రికెట్",
		"bollywood":  "బాలీవుడ్",
		"movie":      "సినిమా",
		"film":       "చిత్రం",
	}

	hindiTerms = map[string]string{
		"news":       "समाचार",
		"latest":     "नवीनतम",
		"breaking":   "ब्रेकिंग",
		"technology": "प्रौद्योगिकी",
		"sports":     "खेल",
		"politics":   "राजनीति",
		"business":   "व्यापार",
		"health":     "स्वास्थ्य",
		"india":      "भारत",
		"cricket":    "क्रिकेट",
		"bollywood":  "बॉलीवुड",
		"movie":      "फिल्म",
	}
)

// dictionaryFor returns the word dictionary for a language, or nil when the
// rule-based path has no coverage.
func dictionaryFor(language string) map[string]string {
	switch language {
	case "te":
		return teluguTerms
	case "hi":
		return hindiTerms
	}
	return nil
}

// translateWords replaces each dictionary-covered word in text with its
// translation. Matching is case-insensitive and ignores trailing punctuation;
// uncovered words are kept verbatim, so the output is a mixed-language
// rendering rather than a full translation.
func translateWords(text string, dict map[string]string) string {
	words := strings.Fields(text)
	for i, word := range words {
		clean := strings.ToLower(strings.Trim(word, ".,!?"))
		if translated, ok := dict[clean]; ok {
			words[i] = translated
		}
	}
	return strings.Join(words, " ")
}
