package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/wer-standings/internal/api/handler"
	"github.com/albapepper/wer-standings/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(h *handler.Handler, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(TimingMiddleware)

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag", "Location"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// The websocket is registered outside the gzip group; a compressed
		// writer cannot be hijacked.
		r.Get("/scenarios/{id}/live", h.Live)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Compress(5)) // gzip

			// Season
			r.Get("/schedule", h.GetSchedule)
			r.Get("/standings", h.GetStandings)
			r.Get("/teams", h.GetTeams)

			// Scenarios
			r.Post("/scenarios", h.CreateScenario)
			r.Route("/scenarios/{id}", func(r chi.Router) {
				r.Get("/", h.GetScenario)
				r.Delete("/", h.DeleteScenario)
				r.Get("/schedule", h.GetScenarioSchedule)
				r.Get("/standings", h.GetScenarioStandings)
				r.Post("/reset", h.ResetScenario)
				r.Put("/games/{row}", h.SetResult)
				r.Put("/games/{row}/score/{side}", h.SetScore)
				r.Post("/games/{row}/bonus/{side}", h.ToggleBonus)
			})
		})
	})

	return r
}
