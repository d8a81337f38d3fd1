package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/flashdeck/internal/api/shared"
	"github.com/phrazzld/flashdeck/internal/generation"
)

// Client-facing error messages. These strings are part of the wire contract.
const (
	MsgTopicRequired  = "Topic is required"
	MsgMissingAPIKey  = "Missing Gemini API key"
	MsgNoResponse     = "No response from AI"
	MsgParseFailed    = "Failed to parse flashcards"
	MsgInternalServer = "Internal Server Error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, generation.ErrTopicRequired):
		return http.StatusBadRequest

	// Everything else, including nil, is a server-side failure
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the fixed message for err. Unknown errors,
// including transport failures and candidates without text, collapse to a
// generic message.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgInternalServer
	case errors.Is(err, generation.ErrTopicRequired):
		return MsgTopicRequired
	case errors.Is(err, generation.ErrMissingAPIKey):
		return MsgMissingAPIKey
	case errors.Is(err, generation.ErrNoResponse):
		return MsgNoResponse
	case errors.Is(err, generation.ErrParseFailed):
		return MsgParseFailed
	default:
		return MsgInternalServer
	}
}

// HandleAPIError writes the error response for err and logs the cause.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
