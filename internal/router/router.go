// Package router sets up the HTTP routes and middleware chain for the
// SiteForge server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"siteforge/internal/handlers"
	"siteforge/internal/middleware"
)

// New creates and returns the configured Chi router. limiter guards the
// generation endpoint only; reads are cheap and stay unthrottled.
func New(api *handlers.API, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.With(limiter.Middleware).Post("/generate", api.Generate)

		r.Route("/websites/{id}", func(r chi.Router) {
			r.Get("/", api.GetWebsite)
			r.Get("/qr", api.WebsiteQR)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
