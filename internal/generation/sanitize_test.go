package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence with newlines",
			input:    "```json\n[{\"question\":\"Q\",\"answer\":\"A\"}]\n```",
			expected: `[{"question":"Q","answer":"A"}]`,
		},
		{
			name:     "bare fence",
			input:    "```\n[]\n```",
			expected: "[]",
		},
		{
			name:     "fence on a single line",
			input:    "```json [1,2]```",
			expected: "[1,2]",
		},
		{
			name:     "no fence only whitespace",
			input:    "  \n[1, 2]\t\n",
			expected: "[1, 2]",
		},
		{
			name:     "bare word payload is not a language tag",
			input:    "```true```",
			expected: "true",
		},
		{
			name:     "backticks inside strings survive",
			input:    "[{\"question\":\"What does `ls` do?\",\"answer\":\"Lists ```files```\"}]",
			expected: "[{\"question\":\"What does `ls` do?\",\"answer\":\"Lists ```files```\"}]",
		},
		{
			name:     "uppercase tag",
			input:    "```JSON\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only fences",
			input:    "``````",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

// TestSanitizeUndoesWrapping checks that wrapping trimmed JSON text in any of
// the fence styles models emit is fully undone.
func TestSanitizeUndoesWrapping(t *testing.T) {
	payloads := []string{
		`[]`,
		`[{"question":"What is Go?","answer":"A language"}]`,
		`{"flashcards":[]}`,
		`"just a string"`,
		`42`,
		`true`,
		`null`,
		"[{\"question\":\"`code`\",\"answer\":\"ok\"}]",
	}
	wrappers := map[string]func(string) string{
		"json fence":      func(x string) string { return "```json\n" + x + "\n```" },
		"bare fence":      func(x string) string { return "```\n" + x + "\n```" },
		"tight fence":     func(x string) string { return "```" + x + "```" },
		"padded":          func(x string) string { return "\n\n  " + x + "  \n" },
		"padded fence":    func(x string) string { return "  ```json\n" + x + "\n```  \n" },
		"no wrapping":     func(x string) string { return x },
		"javascript lang": func(x string) string { return "```javascript\n" + x + "\n```" },
	}

	for name, wrap := range wrappers {
		for _, payload := range payloads {
			assert.Equal(t, payload, Sanitize(wrap(payload)), "%s: %s", name, payload)
		}
	}
}
