package api

import "encoding/json"

// GenerateFlashcardsRequest is the body of POST /api/generate-flashcards.
type GenerateFlashcardsRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// GenerateFlashcardsResponse carries the parsed model output unchanged.
type GenerateFlashcardsResponse struct {
	Flashcards json.RawMessage `json:"flashcards"`
}
