package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/flashcards-api/internal/api"
	apiMiddleware "github.com/phrazzld/flashcards-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{apiMiddleware.TraceHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	flashcardHandler := api.NewFlashcardHandler(app.flashcardStore, app.logger)

	// "/flashcards" and "/flashcards/" both reach the collection routes.
	r.Route("/flashcards", func(r chi.Router) {
		r.Post("/", flashcardHandler.CreateFlashcard)
		r.Get("/", flashcardHandler.ListFlashcards)
		r.Get("/{id}", flashcardHandler.GetFlashcard)
		r.Put("/{id}", flashcardHandler.UpdateFlashcard)
		r.Delete("/{id}", flashcardHandler.DeleteFlashcard)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
