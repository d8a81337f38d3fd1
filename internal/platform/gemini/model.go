package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/phrazzld/flashdeck/internal/generation"
	"google.golang.org/genai"
)

// Config holds the connection settings for the Gemini API.
type Config struct {
	// ModelName is the model to call, e.g. "gemini-2.0-flash".
	ModelName string

	// BaseURL overrides the API endpoint. Empty uses the genai default.
	BaseURL string

	// HTTPClient is used for outbound requests. Nil uses the genai default.
	HTTPClient *http.Client
}

// Model sends prompts to Gemini.
type Model struct {
	logger *slog.Logger
	config Config
}

// NewModel creates a Model. The API key is supplied per call, not here.
func NewModel(logger *slog.Logger, config Config) (*Model, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if config.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return &Model{
		logger: logger.With("component", "gemini_model", "model", config.ModelName),
		config: config,
	}, nil
}

// GenerateText implements generation.TextModel.
func (m *Model) GenerateText(ctx context.Context, apiKey, prompt string) (*generation.Completion, error) {
	if apiKey == "" {
		return nil, generation.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, m.clientConfig(apiKey))
	if err != nil {
		if ctx.Err() != nil {
			return nil, classifyError(ctx, err)
		}
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	m.logger.DebugContext(ctx, "Making Gemini API call", "prompt_length", len(prompt))

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := client.Models.GenerateContent(ctx, m.config.ModelName, contents, nil)
	if err != nil {
		classified := classifyError(ctx, err)
		m.logger.ErrorContext(ctx, "Gemini API call failed", "error", classified)
		return nil, classified
	}

	return toCompletion(resp), nil
}

func (m *Model) clientConfig(apiKey string) *genai.ClientConfig {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if m.config.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: m.config.BaseURL}
	}
	if m.config.HTTPClient != nil {
		cfg.HTTPClient = m.config.HTTPClient
	}
	return cfg
}

// toCompletion keeps only the text of each part. Candidates without content
// are kept with no parts so the pipeline can tell them apart from a response
// with no candidates at all.
func toCompletion(resp *genai.GenerateContentResponse) *generation.Completion {
	completion := &generation.Completion{}
	if resp == nil {
		return completion
	}

	for _, candidate := range resp.Candidates {
		var parts []string
		if candidate != nil && candidate.Content != nil {
			for _, part := range candidate.Content.Parts {
				if part != nil {
					parts = append(parts, part.Text)
				}
			}
		}
		completion.Candidates = append(completion.Candidates, generation.Candidate{Parts: parts})
	}
	return completion
}

// classifyError maps a genai failure onto the pipeline's sentinels.
func classifyError(ctx context.Context, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: gemini returned status %d: %s", generation.ErrNoResponse, apiErr.Code, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return fmt.Errorf("%w: gemini returned status %d: %s", generation.ErrNoResponse, apiErrPtr.Code, apiErrPtr.Message)
	}

	var netErr net.Error
	if ctx.Err() != nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", generation.ErrProviderUnavailable, err)
	}

	return fmt.Errorf("%w: %v", generation.ErrNoResponse, err)
}
