package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/normanking/mindlink/internal/analysis"
	"github.com/normanking/mindlink/internal/config"
)

// Server is the MindLink HTTP server.
type Server struct {
	cfg        *config.Config
	engine     *analysis.Engine
	version    string
	httpServer *http.Server
	startTime  time.Time
}

// New creates the HTTP server with all routes registered.
func New(cfg *config.Config, engine *analysis.Engine, version string) *Server {
	s := &Server{
		cfg:       cfg,
		engine:    engine,
		version:   version,
		startTime: time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/question", s.handleQuestion)
	RegisterMetricsRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      requestLogger(corsHeaders(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start runs the server until it is shut down or fails.
func (s *Server) Start() error {
	log.Info().
		Int("port", s.cfg.Server.Port).
		Str("ai_provider", s.engine.ProviderName()).
		Msg("HTTP server starting")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the root handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
