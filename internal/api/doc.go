// Package api handles incoming HTTP requests, request validation, and
// response formatting. It adapts HTTP to the flashcard generation pipeline
// and maps pipeline errors to status codes and fixed client-facing messages.
package api
