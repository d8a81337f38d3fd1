package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/flashdeck/internal/api/middleware"
)

// setupRouter builds the HTTP routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-flashcards", app.flashcardHandler.GenerateFlashcards)
	})

	r.Get("/health", app.flashcardHandler.Health)

	return r
}
