// Package router sets up all HTTP routes and middleware chains for the
// directory server. Browsing is public; tool mutations and favorites
// require a session.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"aiwiki/internal/handlers"
	"aiwiki/internal/middleware"
	"aiwiki/internal/session"
	"aiwiki/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, directory *handlers.Directory, tools *handlers.Tools, favorites *handlers.Favorites, auth *handlers.Auth, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check: no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Embedded static assets (compiled CSS in production builds).
	if static, err := fs.Sub(web.StaticFS, "static"); err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	}

	csrf := middleware.NewCSRF(secureCookies)
	authLimiter := middleware.NewRateLimiter(20, time.Minute)

	r.Group(func(r chi.Router) {
		r.Use(csrf)

		// The directory itself is browsable without an account.
		r.Get("/", directory.Index)

		// Auth pages, rate limited against credential stuffing.
		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Get("/login", auth.LoginPage)
			r.Post("/login", auth.LoginSubmit)
			r.Get("/register", auth.RegisterPage)
			r.Post("/register", auth.RegisterSubmit)
		})
		r.Post("/logout", auth.Logout)

		// Contributing and favorites require a session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Route("/tools", func(r chi.Router) {
				r.Get("/new", tools.NewForm)
				r.Post("/", tools.Create)
				r.Get("/{id}/edit", tools.EditForm)
				r.Post("/{id}", tools.Update)
				r.Post("/{id}/favorite", favorites.Toggle)
			})
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
