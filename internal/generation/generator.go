package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TextModel defines the boundary between the generation pipeline and an
// external AI/LLM service. Implementations send a single prompt and report
// the candidates exactly as the provider returned them.
type TextModel interface {
	// GenerateText sends prompt to the model, authenticating with apiKey.
	// Provider error responses must wrap ErrNoResponse; transport failures
	// must wrap ErrProviderUnavailable.
	GenerateText(ctx context.Context, apiKey, prompt string) (*Completion, error)
}

// Completion is the provider-neutral view of a model response.
type Completion struct {
	Candidates []Candidate
}

// Candidate is one generated option; Parts holds the text of each content
// part in order.
type Candidate struct {
	Parts []string
}

// Options tune the pipeline.
type Options struct {
	// StrictCards rejects decks whose entries are not objects with a non-empty
	// question and answer. Off by default: the parsed JSON is returned as is.
	StrictCards bool
}

// Service runs the topic -> prompt -> model -> sanitize -> parse pipeline.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	model    TextModel
	prompts  *PromptBuilder
	logger   *slog.Logger
	opts     Options
	validate *validator.Validate
}

// NewService wires a Service.
func NewService(model TextModel, prompts *PromptBuilder, logger *slog.Logger, opts Options) (*Service, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: text model cannot be nil", ErrInvalidConfig)
	}
	if prompts == nil {
		return nil, fmt.Errorf("%w: prompt builder cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Service{
		model:    model,
		prompts:  prompts,
		logger:   logger,
		opts:     opts,
		validate: validator.New(),
	}, nil
}

// Generate produces the flashcards for topic. On success the parsed JSON is
// returned verbatim; unless StrictCards is set, individual entries are not
// checked for shape.
func (s *Service) Generate(ctx context.Context, apiKey, topic string) (json.RawMessage, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ErrTopicRequired
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	log := s.logger.With("deck_id", uuid.NewString())

	prompt, err := s.prompts.Build(topic)
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "Prompt generated successfully",
		"topic_length", len(topic),
		"prompt_length", len(prompt))

	completion, err := s.model.GenerateText(ctx, apiKey, prompt)
	if err != nil {
		return nil, err
	}
	if completion == nil || len(completion.Candidates) == 0 {
		log.WarnContext(ctx, "Gemini API returned no candidates")
		return nil, fmt.Errorf("%w: no candidates", ErrNoResponse)
	}

	first := completion.Candidates[0]
	if len(first.Parts) == 0 {
		return nil, ErrEmptyCandidate
	}

	raw := first.Parts[0]
	log.DebugContext(ctx, "Gemini API response",
		"candidate_count", len(completion.Candidates),
		"text", raw)

	cleaned := Sanitize(raw)

	var parsed json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		log.ErrorContext(ctx, "Error parsing flashcards",
			"error", err,
			"text_length", len(cleaned))
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	if s.opts.StrictCards {
		count, err := s.checkCards(parsed)
		if err != nil {
			log.ErrorContext(ctx, "Generated flashcards failed validation", "error", err)
			return nil, err
		}
		log.InfoContext(ctx, "Flashcards generated", "card_count", count)
		return parsed, nil
	}

	log.InfoContext(ctx, "Flashcards generated", "bytes", len(parsed))
	return parsed, nil
}

// checkCards decodes the deck and validates every card, mirroring the field
// checks applied to generated cards elsewhere in the pipeline.
func (s *Service) checkCards(parsed json.RawMessage) (int, error) {
	var cards []Flashcard
	if err := json.Unmarshal(parsed, &cards); err != nil {
		return 0, fmt.Errorf("%w: deck is not an array of flashcards: %v", ErrParseFailed, err)
	}

	for i, card := range cards {
		if err := s.validate.Struct(card); err != nil {
			return 0, fmt.Errorf("%w: card %d: %v", ErrParseFailed, i, err)
		}
	}
	return len(cards), nil
}
