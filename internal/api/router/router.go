package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpmiddleware "github.com/salespulse/leadscore/internal/http/middleware"
	"github.com/salespulse/leadscore/internal/scoring"
	"github.com/salespulse/leadscore/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	ScoringHandler     *scoring.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Per-IP throttling on scoring routes. Zero disables it; health and
	// metrics probes are never throttled.
	RateLimitRPS   int
	RateLimitBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.ScoringHandler.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Group(func(api chi.Router) {
		if cfg.RateLimitRPS > 0 {
			limiter := httpmiddleware.NewRateLimiter(float64(cfg.RateLimitRPS), cfg.RateLimitBurst)
			api.Use(httpmiddleware.RateLimit(limiter))
		}
		api.Route("/leads", func(r chi.Router) {
			r.Post("/score", cfg.ScoringHandler.ScoreLead)
		})
	})

	return r
}
