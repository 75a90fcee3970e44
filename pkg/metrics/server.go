package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the metrics registry over HTTP at /metrics.
type Server struct {
	port   int
	server *http.Server
}

// NewServer creates a metrics HTTP server for the given port. Returns
// nil when metrics collection is disabled.
func NewServer(port int) *Server {
	reg := Registry()
	if reg == nil {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &Server{
		port: port,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	logger.Info("Metrics server listening", "port", s.port)

	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

// Stop initiates graceful shutdown.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Port returns the TCP port the server is configured for.
func (s *Server) Port() int {
	return s.port
}
