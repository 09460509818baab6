// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/iro-by/sitekit-go/internal/content"
)

// requestLocale resolves the locale query parameter, defaulting to the
// canonical Russian locale.
func requestLocale(r *http.Request) string {
	if r.URL.Query().Get("locale") == content.LocaleEN {
		return content.LocaleEN
	}
	return content.LocaleRU
}

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.catalog.Articles(r.Context(), requestLocale(r))
	if err != nil {
		s.logger.Error("listing articles failed", "error", err)
		writeError(w, http.StatusBadGateway, "content unavailable")
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (s *Server) handleArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	article, err := s.catalog.ArticleBySlug(r.Context(), requestLocale(r), slug)
	if err != nil {
		s.logger.Error("fetching article failed", "slug", slug, "error", err)
		writeError(w, http.StatusBadGateway, "content unavailable")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (s *Server) handleCommunities(w http.ResponseWriter, r *http.Request) {
	communities, err := s.catalog.Communities(r.Context(), requestLocale(r))
	if err != nil {
		s.logger.Error("listing communities failed", "error", err)
		writeError(w, http.StatusBadGateway, "content unavailable")
		return
	}
	writeJSON(w, http.StatusOK, communities)
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.catalog.Projects(r.Context(), requestLocale(r))
	if err != nil {
		s.logger.Error("listing projects failed", "error", err)
		writeError(w, http.StatusBadGateway, "content unavailable")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleRabbiQAs(w http.ResponseWriter, r *http.Request) {
	qas, err := s.catalog.RabbiQAs(r.Context(), requestLocale(r))
	if err != nil {
		s.logger.Error("listing rabbi QAs failed", "error", err)
		writeError(w, http.StatusBadGateway, "content unavailable")
		return
	}
	writeJSON(w, http.StatusOK, qas)
}

func (s *Server) handleTraditions(w http.ResponseWriter, r *http.Request) {
	traditions, err := s.catalog.Traditions(r.Context(), requestLocale(r))
	if err != nil {
		s.logger.Error("listing traditions failed", "error", err)
		writeError(w, http.StatusBadGateway, "content unavailable")
		return
	}
	writeJSON(w, http.StatusOK, traditions)
}

func (s *Server) handlePosterEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.catalog.PosterEvents(r.Context(), requestLocale(r))
	if err != nil {
		s.logger.Error("listing poster events failed", "error", err)
		writeError(w, http.StatusBadGateway, "content unavailable")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// handleSettings serves the localized site settings. A missing or
// unreachable settings record yields an empty object so the front end
// falls back to its built-in defaults.
func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	setting := s.catalog.Settings(r.Context(), requestLocale(r))
	if setting == nil {
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	articles, err := s.catalog.Search(r.Context(), requestLocale(r), query)
	if err != nil {
		s.logger.Error("search failed", "query", query, "error", err)
		writeError(w, http.StatusBadGateway, "search unavailable")
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// handleRabbiQuestion accepts an ask-the-rabbi form submission.
func (s *Server) handleRabbiQuestion(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var q content.RabbiQuestion
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q.Name = strings.TrimSpace(sanitizer.Sanitize(q.Name))
	q.Question = strings.TrimSpace(sanitizer.Sanitize(q.Question))
	q.Community = strings.TrimSpace(sanitizer.Sanitize(q.Community))
	q.Email = strings.TrimSpace(q.Email)

	if q.Name == "" || q.Question == "" {
		writeError(w, http.StatusBadRequest, "name and question are required")
		return
	}

	if err := s.catalog.SubmitRabbiQuestion(r.Context(), q); err != nil {
		s.logger.Error("submitting rabbi question failed", "error", err)
		writeError(w, http.StatusBadGateway, "question could not be delivered")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]bool{"ok": true})
}
