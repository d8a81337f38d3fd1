package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashdeck/internal/api/shared"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
)

// FlashcardGenerator produces a deck for a topic.
type FlashcardGenerator interface {
	Generate(ctx context.Context, apiKey, topic string) (json.RawMessage, error)
}

// CredentialSource supplies the provider API key. It is consulted on every
// request, so a rotated key takes effect without a restart.
type CredentialSource interface {
	GeminiAPIKey() string
}

// FlashcardHandler handles flashcard generation requests.
type FlashcardHandler struct {
	generator   FlashcardGenerator
	credentials CredentialSource
	logger      *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler.
func NewFlashcardHandler(
	generator FlashcardGenerator,
	credentials CredentialSource,
	logger *slog.Logger,
) *FlashcardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashcardHandler{
		generator:   generator,
		credentials: credentials,
		logger:      logger.With("component", "flashcard_handler"),
	}
}

// GenerateFlashcards handles POST /api/generate-flashcards requests.
func (h *FlashcardHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GenerateFlashcardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, fmt.Errorf("failed to decode request body: %w", err))
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %v", generation.ErrTopicRequired, err))
		return
	}

	deck, err := h.generator.Generate(r.Context(), h.credentials.GeminiAPIKey(), req.Topic)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("flashcards generated", "topic_length", len(req.Topic), "bytes", len(deck))
	shared.RespondWithJSON(w, r, http.StatusOK, GenerateFlashcardsResponse{Flashcards: deck})
}

// Health handles GET /health.
func (h *FlashcardHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		h.logger.Error("Failed to write health check response", "error", err)
	}
}
