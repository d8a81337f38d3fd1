// Package gemini implements generation.TextModel on top of Google's Gemini
// API using the google.golang.org/genai client.
//
// The adapter is deliberately thin. It creates a client per call with the
// caller's API key, sends one generateContent request, and flattens the
// response into a generation.Completion. It performs no retries and applies
// no timeout of its own; the request context governs cancellation.
//
// Errors are classified for the pipeline:
//   - API error payloads (non-2xx responses) wrap generation.ErrNoResponse
//   - network failures and cancelled contexts wrap generation.ErrProviderUnavailable
package gemini
