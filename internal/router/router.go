// Package router sets up the HTTP routes and middleware chains for the
// template service. Reads are public; every mutation sits behind bearer
// token authentication.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Abrar408/powerpresent-templates/internal/handlers"
	"github.com/Abrar408/powerpresent-templates/internal/middleware"
	"github.com/Abrar408/powerpresent-templates/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(
	sessionStore *session.Store,
	copyLimiter *middleware.RateLimiter,
	auth *handlers.Auth,
	templates *handlers.Templates,
	slides *handlers.Slides,
	variations *handlers.Variations,
	media *handlers.Media,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadSession(sessionStore))

	r.Get("/health", healthHandler)

	r.Post("/auth/login", auth.Login)
	r.Post("/auth/logout", auth.Logout)

	r.Route("/templates", func(r chi.Router) {
		// Public reads.
		r.Get("/", templates.List)
		r.Get("/by-name/{name}", templates.GetByName)
		r.Get("/{id}", templates.Get)
		r.Get("/{id}/structure", templates.Structure)

		// Writes require a session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/", templates.Create)
			r.Put("/{id}", templates.Update)
			r.Delete("/{id}", templates.Delete)
		})
	})

	r.Route("/slides", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", slides.Create)
		r.Put("/{id}", slides.Update)
		r.Delete("/{id}", slides.Delete)
	})

	r.Route("/variations", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		// The bulk copy touches every slide in the system, so it is
		// admin-only and rate-limited on top of auth.
		r.With(middleware.RequireAdmin, copyLimiter.Middleware).
			Post("/copy-all-slides", variations.CopyAllSlides)
	})

	r.Route("/media", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", media.Upload)
		r.Delete("/{id}", media.Delete)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
