// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. Errors coming back from the Gemini SDK can echo request
// URLs and headers, so provider credentials are scrubbed here before they reach
// structured logs.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; provider-specific patterns run before the
// generic ones so their placeholders are not matched twice.
var rules = []rule{
	// Google API keys: "AIza" followed by 35 URL-safe characters.
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},
	// ?key=... query parameter used by the Gemini REST API.
	{regexp.MustCompile(`([?&]key=)[^&\s"']+`), "${1}" + RedactedKeyPlaceholder},
	// x-goog-api-key header values.
	{regexp.MustCompile(`(?i)(x-goog-api-key["']?\s*[:=]\s*["']?)[^\s"',\]]+`), "${1}" + RedactedKeyPlaceholder},
	{regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9._~+/=\-]+`), "${1}" + RedactedCredentialPlaceholder},
	{
		regexp.MustCompile(`(?i)(api[_-]?key|secret|token)(["'\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		"${1}${2}" + RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
