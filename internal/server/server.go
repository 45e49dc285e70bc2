// Package server exposes trace generation over a small JSON HTTP API with
// health, readiness and Prometheus endpoints alongside.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/ansonlam23/algorithm-visualizer/internal/engine"
	"github.com/ansonlam23/algorithm-visualizer/internal/observability"
)

// Server timeouts.
const (
	serverReadTimeout     = 30 * time.Second
	serverWriteTimeout    = 60 * time.Second
	serverIdleTimeout     = 120 * time.Second
	serverShutdownTimeout = 5 * time.Second
)

// maxBodyBytes bounds POST bodies; a trace request is a short int list.
const maxBodyBytes = 1 << 20

// Deps holds the collaborators of the HTTP surface.
type Deps struct {
	Tracer     trace.Tracer
	RED        *observability.REDMetrics
	Prometheus *observability.Prometheus
	Engine     *engine.Service
}

// NewHandler builds the route table wrapped in tracing middleware.
func NewHandler(deps Deps) http.Handler {
	if deps.Tracer == nil {
		deps.Tracer = nooptrace.NewTracerProvider().Tracer("")
	}

	api := &api{engine: deps.Engine}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/algorithms", api.handleAlgorithms)
	mux.HandleFunc("POST /api/trace", api.handleTrace)
	mux.HandleFunc("GET /api/compare", api.handleCompare)
	mux.Handle("GET /healthz", observability.HealthHandler())
	mux.Handle("GET /readyz", observability.ReadyHandler(deps.Engine.ReadyCheck()))

	if deps.Prometheus != nil {
		mux.Handle("GET /metrics", deps.Prometheus.Handler)
	}

	return observability.HTTPMiddleware(deps.Tracer, deps.RED, mux)
}

// Server is a listening HTTP server.
type Server struct {
	server   *http.Server
	listener net.Listener
	logger   *slog.Logger
}

// Listen binds addr and returns a server ready to Serve handler.
func Listen(addr string, handler http.Handler, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var lc net.ListenConfig

	listener, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	return &Server{
		server: &http.Server{
			Handler:      handler,
			ReadTimeout:  serverReadTimeout,
			WriteTimeout: serverWriteTimeout,
			IdleTimeout:  serverIdleTimeout,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() string { return s.listener.Addr().String() }

// Serve blocks until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.server.Serve(s.listener)
	}()

	s.logger.InfoContext(ctx, "http server listening", "addr", s.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverShutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	s.logger.InfoContext(ctx, "http server stopped")

	return nil
}
