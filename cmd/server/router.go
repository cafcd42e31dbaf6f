package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rosymaple/dadjoke/internal/api"
	apiMiddleware "github.com/rosymaple/dadjoke/internal/api/middleware"
	"github.com/rs/cors"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (a *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{apiMiddleware.TraceHeader},
	}).Handler)

	jokeHandler := api.NewJokeHandler(a.jokeService, a.logger)

	r.Get("/", api.Index)
	r.Get("/health", jokeHandler.Health)

	// Legacy form endpoint
	r.Post("/get_joke", jokeHandler.TellJoke)

	r.Route("/api", func(r chi.Router) {
		r.Post("/jokes", jokeHandler.TellJoke)
	})

	return r
}
