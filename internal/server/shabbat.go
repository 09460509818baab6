// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iro-by/sitekit-go/internal/hebcal"
)

const shabbatCacheTTL = 3 * time.Hour

// handleShabbat serves candle-lighting times for a city. Responses are
// cached; unknown cities resolve to the Minsk feed.
func (s *Server) handleShabbat(w http.ResponseWriter, r *http.Request) {
	city := strings.ToLower(chi.URLParam(r, "city"))
	if city == "" {
		city = s.cfg.ShabbatCity
	}

	if buf, err := s.cache.Get(r.Context(), "shabbat:"+city); err == nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(buf)
		return
	}

	times, err := s.fetchAndCacheShabbat(r.Context(), city)
	if err != nil {
		s.logger.Error("fetching shabbat times failed", "city", city, "error", err)
		writeError(w, http.StatusBadGateway, "shabbat times unavailable")
		return
	}
	writeJSON(w, http.StatusOK, times)
}

// fetchAndCacheShabbat pulls the upstream feed and stores the parsed
// result under the city key.
func (s *Server) fetchAndCacheShabbat(ctx context.Context, city string) (*hebcal.Times, error) {
	times, err := s.hebcal.FetchShabbat(ctx, city)
	if err != nil {
		return nil, err
	}
	if buf, err := json.Marshal(times); err == nil {
		if err := s.cache.Set(ctx, "shabbat:"+city, buf, shabbatCacheTTL); err != nil {
			s.logger.Warn("caching shabbat times failed", "city", city, "error", err)
		}
	}
	return times, nil
}

// refreshShabbatCache re-fetches the configured city so cached times
// stay fresh between visitor requests. Runs on the cron schedule.
func (s *Server) refreshShabbatCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	city := s.cfg.ShabbatCity
	if city == "" {
		city = "minsk"
	}
	if _, err := s.fetchAndCacheShabbat(ctx, city); err != nil {
		s.logger.Warn("shabbat cache refresh failed", "city", city, "error", err)
	}
}
