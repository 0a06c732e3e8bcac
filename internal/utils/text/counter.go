// Package text provides text measurement helpers shared by the enrichment
// backends.
package text

// CountRunes counts the number of Unicode characters in s. Summaries and
// translations may contain Telugu or Hindi script, where byte length
// overstates the visible size, so character limits are measured in runes.
func CountRunes(s string) int {
	return len([]rune(s))
}
