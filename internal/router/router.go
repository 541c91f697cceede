// Package router sets up all HTTP routes and middleware chains for the
// theme engine's admin API and public stylesheet endpoint.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"themepress/internal/handlers"
	"themepress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The assets handler may be nil when no asset
// store is configured.
func New(themes *handlers.Themes, backups *handlers.Backups, styles *handlers.Styles, assets *handlers.Assets) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Public stylesheet — the single well-known location of the active
	// theme's compiled CSS.
	r.Get("/styles/active.css", styles.Active)

	// Admin API. Authentication is handled by the surrounding deployment
	// (reverse proxy); this service trusts X-Admin-User for audit fields.
	r.Route("/api", func(r chi.Router) {
		r.Route("/themes", func(r chi.Router) {
			r.Get("/", themes.List)
			r.Post("/", themes.Create)
			r.Post("/validate", themes.Validate)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", themes.Get)
				r.Delete("/", themes.Delete)
				r.Patch("/settings", themes.UpdateSetting)
				r.Post("/activate", themes.Activate)
				r.Post("/preview", themes.Preview)
				r.Post("/backup", backups.Create)
				r.Get("/backups", backups.List)
			})
		})

		r.Post("/backups/{id}/restore", backups.Restore)

		if assets != nil {
			r.Get("/assets/{slot}", assets.Active)
		}
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
