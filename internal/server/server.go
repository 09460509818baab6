// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package server is the companion HTTP service of the site: contact
// form intake, cached Shabbat candle-lighting times and a health probe.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/robfig/cron/v3"

	"github.com/iro-by/sitekit-go/internal/cache"
	"github.com/iro-by/sitekit-go/internal/catalog"
	"github.com/iro-by/sitekit-go/internal/config"
	"github.com/iro-by/sitekit-go/internal/hebcal"
	"github.com/iro-by/sitekit-go/internal/strapi"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server serves the companion HTTP API.
type Server struct {
	cfg     *config.Config
	client  *strapi.Client
	catalog *catalog.Service
	hebcal  *hebcal.Client
	cache   cache.Cache
	logger  *slog.Logger
	limiter *ipRateLimiter
	cron    *cron.Cron
}

// New creates the companion server.
func New(cfg *config.Config, client *strapi.Client, hb *hebcal.Client, c cache.Cache, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:     cfg,
		client:  client,
		catalog: catalog.New(client, c, time.Duration(cfg.CacheTTL)*time.Second, logger),
		hebcal:  hb,
		cache:   c,
		logger:  logger,
		limiter: newIPRateLimiter(contactRateLimit, contactRateBurst),
		cron:    cron.New(),
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(s.corsMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/contact", s.handleContact)
	r.Get("/api/shabbat/{city}", s.handleShabbat)
	r.Get("/api/shabbat", s.handleShabbat)

	r.Route("/api/content", func(r chi.Router) {
		r.Get("/articles", s.handleArticles)
		r.Get("/articles/{slug}", s.handleArticleBySlug)
		r.Get("/communities", s.handleCommunities)
		r.Get("/projects", s.handleProjects)
		r.Get("/rabbi-qas", s.handleRabbiQAs)
		r.Get("/traditions", s.handleTraditions)
		r.Get("/poster-events", s.handlePosterEvents)
		r.Get("/settings", s.handleSettings)
		r.Get("/search", s.handleSearch)
	})
	r.Post("/api/rabbi-question", s.handleRabbiQuestion)

	return r
}

// Run starts the server and the Shabbat cache refresh schedule, then
// blocks until the context is canceled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.cron.AddFunc("@hourly", s.refreshShabbatCache); err != nil {
		return err
	}
	s.cron.Start()
	defer s.cron.Stop()

	// Warm the cache so the first page view does not wait on the
	// upstream feed.
	go s.refreshShabbatCache()

	srv := &http.Server{
		Addr:         s.cfg.ServerAddr(),
		Handler:      s.Router(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
