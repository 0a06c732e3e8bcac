package respond

import (
	"regexp"
)

var (
	// Anthropic keys must be masked before OpenAI keys: the broader sk-
	// pattern would otherwise split an sk-ant- key in half.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// Provider API keys passed as URL query parameters.
	queryKeyPattern = regexp.MustCompile(`(apiKey|token)=[a-zA-Z0-9]+`)
)

// SanitizeError returns the error message with credentials masked. Provider
// URLs embed API keys as query parameters, so raw transport errors are never
// safe to log unmasked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = queryKeyPattern.ReplaceAllString(msg, "$1=****")

	return msg
}
