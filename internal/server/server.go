// Package server provides the HTTP API for the Neptune search service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Tajudeen-boss/Neptune-task/internal/config"
	"github.com/Tajudeen-boss/Neptune-task/internal/search"
	"github.com/Tajudeen-boss/Neptune-task/internal/store"
)

// Server is the HTTP server for the search API.
type Server struct {
	pipeline *search.Pipeline
	store    store.Store
	config   *config.ServerConfig
	logger   *zap.Logger
	limiter  *rate.Limiter
	server   *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(pipeline *search.Pipeline, st store.Store, cfg *config.ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		pipeline: pipeline,
		store:    st,
		config:   cfg,
		logger:   logger,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// Router builds the chi router with middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(s.config.TimeoutSecs) * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.With(s.rateLimit).Post("/search", s.handleSearch)
		r.Get("/providers", s.handleProviders)
		r.Get("/recent-searches", s.handleRecentSearches)
	})

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// rateLimit bounds the search endpoint; each search fans out to up to two
// metered completion calls.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			s.respondError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
