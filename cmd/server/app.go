package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashdeck/internal/api"
	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/platform/gemini"
)

// application holds the dependencies shared by the HTTP handlers.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator        *generation.Service
	flashcardHandler *api.FlashcardHandler
}

// newApplication wires the generation pipeline. opts adjust the Gemini
// connection settings after they are read from cfg.
func newApplication(cfg *config.Config, logger *slog.Logger, opts ...func(*gemini.Config)) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	modelConfig := gemini.Config{
		ModelName:  cfg.LLM.ModelName,
		BaseURL:    cfg.LLM.BaseURL,
		HTTPClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(&modelConfig)
	}

	model, err := gemini.NewModel(logger, modelConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini model: %w", err)
	}

	prompts, err := generation.NewPromptBuilder(cfg.LLM.PromptTemplatePath, cfg.LLM.MinCards, cfg.LLM.MaxCards)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt builder: %w", err)
	}

	generator, err := generation.NewService(
		model,
		prompts,
		logger.With("component", "flashcard_generator"),
		generation.Options{StrictCards: cfg.LLM.StrictCards},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize flashcard generator: %w", err)
	}
	logger.Info("Flashcard generator initialized successfully",
		"min_cards", cfg.LLM.MinCards,
		"max_cards", cfg.LLM.MaxCards)

	return &application{
		config:           cfg,
		logger:           logger,
		generator:        generator,
		flashcardHandler: api.NewFlashcardHandler(generator, cfg.Credentials(), logger),
	}, nil
}
