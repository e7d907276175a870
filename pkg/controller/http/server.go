package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vllm-mock/pkg/domain/interfaces"
	"github.com/m-mizutani/vllm-mock/pkg/domain/types"
	"github.com/m-mizutani/vllm-mock/pkg/infra/metrics"
)

// config holds internal HTTP server configuration
type config struct {
	addr    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithLogger sets the logger used for request and error logs
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics enables request metrics and serves them at /metrics
func WithMetrics(rec *metrics.Recorder) Option {
	return func(c *config) {
		c.metrics = rec
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	inferenceUC interfaces.InferenceUseCase,
	opts ...Option,
) (*Server, error) {
	if inferenceUC == nil {
		return nil, goerr.New("inference use case is required")
	}

	// Default configuration
	cfg := &config{
		addr:   types.DefaultAddr,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(cfg.logger))
	if cfg.metrics != nil {
		router.Use(MetricsMiddleware(cfg.metrics))
	}
	router.Use(middleware.Recoverer)

	h := &inferenceHandler{
		uc:     inferenceUC,
		logger: cfg.logger,
	}
	router.Get("/", h.handleRoot)
	router.Get("/health", h.handleHealth)
	router.Get("/v1/models", h.handleListModels)

	if cfg.metrics != nil {
		router.Method(http.MethodGet, metrics.Path, cfg.metrics.Handler())
	}

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
