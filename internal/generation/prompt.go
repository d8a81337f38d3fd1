package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"
)

//go:embed prompt.tmpl
var defaultPromptTemplate string

// promptData represents the data passed to the prompt template
type promptData struct {
	Topic    string
	MinCards int
	MaxCards int
}

// PromptBuilder renders the instruction sent to the model.
type PromptBuilder struct {
	tmpl     *template.Template
	minCards int
	maxCards int
}

// NewPromptBuilder parses the template at templatePath, or the embedded default
// when templatePath is empty.
func NewPromptBuilder(templatePath string, minCards, maxCards int) (*PromptBuilder, error) {
	if minCards <= 0 || maxCards < minCards {
		return nil, fmt.Errorf("%w: card range %d-%d", ErrInvalidConfig, minCards, maxCards)
	}

	content := defaultPromptTemplate
	if templatePath != "" {
		raw, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				ErrInvalidConfig, templatePath, err)
		}
		content = string(raw)
	}

	tmpl, err := template.New("flashcards").Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl, minCards: minCards, maxCards: maxCards}, nil
}

// Build embeds topic into the prompt.
func (b *PromptBuilder) Build(topic string) (string, error) {
	var buf bytes.Buffer
	data := promptData{Topic: topic, MinCards: b.minCards, MaxCards: b.maxCards}
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
