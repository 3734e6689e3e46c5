package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/davidbz/tariff/internal/config"
	"github.com/davidbz/tariff/internal/http/middleware"
	"github.com/davidbz/tariff/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.Config,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	return &Server{
		config:      cfg.Server,
		handler:     handler,
		middlewares: middlewares,
		srv:         nil,
	}
}

// Routes builds the route table. Exposed for handler tests.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/models", s.handler.HandleListModels)
	mux.HandleFunc("GET /v1/pricing/{provider}/{model}", s.handler.HandleGetPricing)
	mux.HandleFunc("POST /v1/cost", s.handler.HandleCost)
	mux.HandleFunc("POST /v1/refresh", s.handler.HandleRefresh)
	mux.HandleFunc("GET /health", s.handler.HandleHealth)

	return s.middlewares(mux)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	// Create server with timeouts.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
