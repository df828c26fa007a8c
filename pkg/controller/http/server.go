package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m-mizutani/ghtrail/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr          string
	enableMetrics bool
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithMetrics toggles the Prometheus /metrics endpoint
func WithMetrics(enabled bool) Option {
	return func(c *config) {
		c.enableMetrics = enabled
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	activityUC interfaces.ActivityUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:          "localhost:8080",
		enableMetrics: true,
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", healthHandler(time.Now().UTC()))

	if cfg.enableMetrics {
		router.Handle("/metrics", promhttp.Handler())
	}

	h := newActivityHandler(activityUC)
	router.Route("/api", func(r chi.Router) {
		r.Get("/activity/{username}", h.timeline)
		r.Get("/starred/{username}", h.starred)
		r.Get("/repos/{username}", h.repositories)
		r.Get("/summary/{username}", h.summary)
		r.Get("/{view}/{username}", h.view)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
