// Package generation turns a free-text topic into a deck of flashcards using an
// AI/LLM text model (Gemini in production). It owns the provider-neutral part of
// the pipeline: prompt construction, response sanitization, JSON parsing and the
// optional shape validation of each flashcard. The TextModel interface is the
// boundary to the external service, implemented by internal/platform/gemini.
package generation
