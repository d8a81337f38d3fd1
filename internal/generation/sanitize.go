package generation

import (
	"regexp"
	"strings"
)

const fence = "```"

// langTag matches an info string such as "json" right after an opening fence.
var langTag = regexp.MustCompile(`^[A-Za-z][\w+.\-]*`)

// Sanitize removes a markdown code fence wrapped around model output and trims
// surrounding whitespace. Only a leading fence (with optional language tag) and
// a trailing fence are removed, so backticks inside JSON strings survive.
func Sanitize(text string) string {
	s := strings.TrimSpace(text)

	if rest, ok := strings.CutSuffix(s, fence); ok {
		s = rest
	}

	if rest, ok := strings.CutPrefix(s, fence); ok {
		s = rest
		// A bare word with nothing after it is the payload (e.g. ```true```),
		// not a language tag.
		if tag := langTag.FindString(s); tag != "" && strings.TrimSpace(s[len(tag):]) != "" {
			s = s[len(tag):]
		}
	}

	return strings.TrimSpace(s)
}
