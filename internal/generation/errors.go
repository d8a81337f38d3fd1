package generation

import "errors"

// Errors returned by the generation pipeline. The API layer maps each of them
// to a status code and a fixed client-facing message.
var (
	// ErrTopicRequired is returned when the topic is missing or blank.
	ErrTopicRequired = errors.New("topic is required")

	// ErrMissingAPIKey is returned when no provider credential is configured.
	ErrMissingAPIKey = errors.New("missing gemini api key")

	// ErrNoResponse is returned when the provider produced no candidate output,
	// including when it answered the request with an error payload.
	ErrNoResponse = errors.New("no response from language model")

	// ErrEmptyCandidate is returned when the first candidate carries no text part.
	ErrEmptyCandidate = errors.New("first candidate has no text content")

	// ErrParseFailed is returned when the sanitized model output is not valid JSON
	// or, in strict mode, when a flashcard is missing a field.
	ErrParseFailed = errors.New("failed to parse flashcards")

	// ErrProviderUnavailable is returned when the provider could not be reached.
	ErrProviderUnavailable = errors.New("language model unavailable")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
