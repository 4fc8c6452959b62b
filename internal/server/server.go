// Package server exposes the pot-odds engine over HTTP. It owns request
// parsing and field validation; the engine may assume its input invariants
// hold by the time it runs.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/lox/potodds/internal/engine"
)

// Version is reported by the health and root endpoints.
const Version = "0.1.0"

// calculationTimeout bounds a single calculation as a guard against a
// misbehaving oracle. The exhaustive search is CPU-bound with a hard
// worst case of ~1081 evaluations, so this should never trigger.
const calculationTimeout = 10 * time.Second

// Server serves the pot-odds calculation API
type Server struct {
	engine *engine.Engine
	logger *log.Logger
	http   *http.Server
}

// New creates an HTTP server for the given engine and configuration
func New(cfg *Config, eng *engine.Engine, logger *log.Logger) *Server {
	s := &Server{
		engine: eng,
		logger: logger.WithPrefix("server"),
	}

	router := mux.NewRouter()
	router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/calculate", s.handleCalculate).Methods(http.MethodPost)
	router.Use(s.requestLogging)

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	s.http = &http.Server{
		Addr:         cfg.ListenAddress(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	return s
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("Starting pot odds server", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.http.Shutdown(ctx)
}

// requestLogging logs each request with its duration
func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}
