// Package server serves an exported scene to a browser viewer together with
// health and metrics endpoints.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neuroviz-io/neuroviz/pkg/metrics"
	"github.com/neuroviz-io/neuroviz/pkg/scene"
)

// Server is the HTTP viewer server. The scene is immutable for the lifetime
// of the server, so every handler is read-only.
type Server struct {
	scene     *scene.Scene
	metrics   *metrics.Registry
	logger    *slog.Logger
	startTime time.Time
	version   string

	httpServer *http.Server
}

// NewServer creates a viewer server for an exported scene.
func NewServer(sc *scene.Scene, reg *metrics.Registry, logger *slog.Logger, addr string) *Server {
	s := &Server{
		scene:     sc,
		metrics:   reg,
		logger:    logger,
		startTime: time.Now(),
		version:   "1.0.0",
	}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler builds the route table. Exposed separately so tests can drive the
// server without binding a socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/scene", s.handleScene)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(
		s.metrics.GetPrometheusRegistry(),
		promhttp.HandlerOpts{},
	))

	return s.observeMiddleware(mux)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("viewer server starting",
		"addr", s.httpServer.Addr,
		"scene_id", s.scene.ID,
		"points", len(s.scene.Points),
		"edges", len(s.scene.Edges),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
