// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/iro-by/sitekit-go/internal/cache"
	"github.com/iro-by/sitekit-go/internal/config"
	"github.com/iro-by/sitekit-go/internal/content"
	"github.com/iro-by/sitekit-go/internal/hebcal"
	"github.com/iro-by/sitekit-go/internal/strapi"
)

// testEnv is a fully wired server with stub CMS and Hebcal upstreams.
type testEnv struct {
	server  *Server
	router  http.Handler
	mu        sync.Mutex
	cmsReqs   []content.ContactMessage
	rabbiReqs int
	hebReqs   int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{}

	cms := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/contact-messages":
			var body struct {
				Data content.ContactMessage `json:"data"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			env.mu.Lock()
			env.cmsReqs = append(env.cmsReqs, body.Data)
			env.mu.Unlock()
			_, _ = w.Write([]byte(`{"data":{"id":1,"documentId":"m-1"}}`))

		case r.Method == http.MethodPost && r.URL.Path == "/api/rabbi-questions":
			env.mu.Lock()
			env.rabbiReqs++
			env.mu.Unlock()
			_, _ = w.Write([]byte(`{"data":{"id":1,"documentId":"q-1"}}`))

		case r.Method == http.MethodGet && r.URL.Path == "/api/communities":
			_, _ = w.Write([]byte(`{"data":[{"id":1,"documentId":"c-1","name":"Минск","slug":"minsk","order":1}]}`))

		case r.Method == http.MethodGet && r.URL.Path == "/api/articles":
			if r.URL.Query().Get("filters[slug][$eq]") == "missing" {
				_, _ = w.Write([]byte(`{"data":[]}`))
				return
			}
			_, _ = w.Write([]byte(`{"data":[{"id":1,"documentId":"a-1","title":"Chanukah","slug":"chanukah"}]}`))

		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(cms.Close)

	heb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.mu.Lock()
		env.hebReqs++
		env.mu.Unlock()
		_, _ = w.Write([]byte(`{"location":{"city":"Minsk"},"items":[
			{"title":"Candle lighting: 17:28","date":"2026-02-06T17:28:00+03:00","category":"candles"}
		]}`))
	}))
	t.Cleanup(heb.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mem := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { _ = mem.Close() })

	cfg := &config.Config{
		ShabbatCity:    "minsk",
		AllowedOrigins: []string{"https://iro.by"},
	}
	env.server = New(cfg, strapi.New(cms.URL, "", strapi.WithLogger(logger)), hebcal.New(heb.URL), mem, logger)
	env.router = env.server.Router()
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestContactForwarded(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name":"Lev <script>alert(1)</script>","email":"lev@example.com","message":"Shalom!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := env.do(req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202 (body %s)", rec.Code, rec.Body.String())
	}

	if len(env.cmsReqs) != 1 {
		t.Fatalf("forwarded messages = %d, want 1", len(env.cmsReqs))
	}
	msg := env.cmsReqs[0]
	if strings.Contains(msg.Name, "<script>") {
		t.Errorf("name not sanitized: %q", msg.Name)
	}
	if msg.Message != "Shalom!" {
		t.Errorf("message = %q", msg.Message)
	}
}

func TestContactRejectsInvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name":"Lev","email":"not-an-email","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))

	rec := env.do(req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(env.cmsReqs) != 0 {
		t.Errorf("invalid submission forwarded: %+v", env.cmsReqs)
	}
}

func TestContactRejectsEmptyMessage(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name":"Lev","email":"lev@example.com","message":"  "}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))

	rec := env.do(req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestContactRateLimited(t *testing.T) {
	env := newTestEnv(t)

	var last int
	for i := 0; i < contactRateBurst+1; i++ {
		body := `{"name":"Lev","email":"lev@example.com","message":"hi"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.RemoteAddr = "203.0.113.7:1234"
		last = env.do(req).Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("status after burst = %d, want 429", last)
	}
}

func TestShabbatCached(t *testing.T) {
	env := newTestEnv(t)

	first := env.do(httptest.NewRequest(http.MethodGet, "/api/shabbat/minsk", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", first.Code, first.Body.String())
	}
	var times hebcal.Times
	if err := json.Unmarshal(first.Body.Bytes(), &times); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if times.CandleLighting == nil || times.CandleLighting.Time != "17:28" {
		t.Errorf("candleLighting = %+v", times.CandleLighting)
	}

	second := env.do(httptest.NewRequest(http.MethodGet, "/api/shabbat/minsk", nil))
	if second.Code != http.StatusOK {
		t.Fatalf("cached status = %d", second.Code)
	}
	if env.hebReqs != 1 {
		t.Errorf("upstream requests = %d, want 1 (second served from cache)", env.hebReqs)
	}
}

func TestShabbatDefaultCity(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/shabbat", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://iro.by")

	rec := env.do(req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://iro.by" {
		t.Errorf("allow-origin = %q", got)
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")

	rec := env.do(req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("allow-origin = %q, want empty for disallowed origin", got)
	}
}

func TestContentCommunities(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/content/communities?locale=ru", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var communities []content.Community
	if err := json.Unmarshal(rec.Body.Bytes(), &communities); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(communities) != 1 || communities[0].Slug != "minsk" {
		t.Errorf("communities = %+v", communities)
	}
}

func TestContentArticleNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/content/articles/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/content/search", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 without q", rec.Code)
	}
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/content/search?q=chanukah", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestRabbiQuestionSubmitted(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name":"Lev","email":"lev@example.com","question":"When do we light candles?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/rabbi-question", strings.NewReader(body))

	rec := env.do(req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202 (body %s)", rec.Code, rec.Body.String())
	}
	if env.rabbiReqs != 1 {
		t.Errorf("forwarded questions = %d, want 1", env.rabbiReqs)
	}
}

func TestRabbiQuestionRequiresFields(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name":"","email":"lev@example.com","question":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/rabbi-question", strings.NewReader(body))

	rec := env.do(req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.4:5000"
	if got := clientIP(req); got != "198.51.100.4" {
		t.Errorf("clientIP = %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := clientIP(req); got != "203.0.113.9" {
		t.Errorf("clientIP with XFF = %q", got)
	}
}
