// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/iro-by/sitekit-go/internal/config"
	"github.com/iro-by/sitekit-go/internal/strapi"
)

// fakeCMS is an in-memory CMS good enough for bootstrap flows: it
// serves roles, permissions and locales, accepts content writes and
// records every request it sees.
type fakeCMS struct {
	mu       sync.Mutex
	requests []string // "METHOD /path"

	publicRole  bool
	permissions map[string]bool // action -> enabled
	locales     []string
	seeded      bool // guard: one ru community already exists

	failPaths map[string]int // "METHOD /path" -> status to return once

	nextID int
	server *httptest.Server
}

func newFakeCMS(t *testing.T) *fakeCMS {
	t.Helper()
	f := &fakeCMS{
		publicRole:  true,
		permissions: map[string]bool{},
		locales:     []string{"en"},
		failPaths:   map[string]int{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeCMS) client() *strapi.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return strapi.New(f.server.URL, "test-token", strapi.WithLogger(logger))
}

func (f *fakeCMS) record(r *http.Request) string {
	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.requests = append(f.requests, key)
	f.mu.Unlock()
	return key
}

func (f *fakeCMS) count(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, req := range f.requests {
		if strings.HasPrefix(req, prefix) {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeCMS) handle(w http.ResponseWriter, r *http.Request) {
	key := f.record(r)

	f.mu.Lock()
	status, fail := f.failPaths[key]
	if fail {
		// One-shot failure injection
		delete(f.failPaths, key)
	}
	f.mu.Unlock()
	if fail {
		http.Error(w, "injected failure", status)
		return
	}

	switch {
	case key == "GET /api/users-permissions/roles":
		roles := []map[string]any{{"id": 1, "type": "authenticated"}}
		if f.publicRole {
			roles = append(roles, map[string]any{"id": 2, "type": "public"})
		}
		writeJSON(w, map[string]any{"roles": roles})

	case key == "GET /api/users-permissions/permissions":
		action := r.URL.Query().Get("filters[action][$eq]")
		f.mu.Lock()
		enabled, exists := f.permissions[action]
		f.mu.Unlock()
		data := []map[string]any{}
		if exists {
			data = append(data, map[string]any{"id": 7, "action": action, "enabled": enabled})
		}
		writeJSON(w, map[string]any{"data": data})

	case key == "POST /api/users-permissions/permissions":
		var body struct {
			Data struct {
				Action string `json:"action"`
			} `json:"data"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.permissions[body.Data.Action] = true
		f.mu.Unlock()
		writeJSON(w, map[string]any{"data": map[string]any{"id": 8, "action": body.Data.Action, "enabled": true}})

	case key == "PUT /api/users-permissions/permissions/7":
		writeJSON(w, map[string]any{"data": map[string]any{"id": 7, "enabled": true}})

	case key == "GET /api/i18n/locales":
		var locales []map[string]any
		f.mu.Lock()
		for i, code := range f.locales {
			locales = append(locales, map[string]any{"id": i + 1, "code": code})
		}
		f.mu.Unlock()
		writeJSON(w, locales)

	case key == "POST /api/i18n/locales":
		var body struct {
			Code string `json:"code"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.locales = append(f.locales, body.Code)
		f.mu.Unlock()
		writeJSON(w, map[string]any{"id": 9, "code": body.Code})

	case key == "POST /admin/register-admin":
		writeJSON(w, map[string]any{"data": map[string]any{"token": "x"}})

	case key == "GET /api/communities":
		data := []map[string]any{}
		if f.seeded {
			data = append(data, map[string]any{"id": 1, "documentId": "existing"})
		}
		writeJSON(w, map[string]any{"data": data})

	case r.Method == http.MethodPut && r.URL.Path == "/api/setting":
		writeJSON(w, map[string]any{"data": map[string]any{"id": 1, "documentId": "setting-doc"}})

	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/api/"):
		f.mu.Lock()
		f.nextID++
		id := f.nextID
		f.mu.Unlock()
		writeJSON(w, map[string]any{"data": map[string]any{"id": id, "documentId": fmt.Sprintf("doc-%d", id)}})

	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/"):
		writeJSON(w, map[string]any{"data": map[string]any{"id": 1, "documentId": "doc"}})

	default:
		http.NotFound(w, r)
	}
}

func newTestBootstrapper(t *testing.T, f *fakeCMS, cfg *config.Config) *Bootstrapper {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(f.client(), cfg, logger, nil)
}

func TestEnsurePublicPermissionsCreatesMissing(t *testing.T) {
	f := newFakeCMS(t)
	b := newTestBootstrapper(t, f, nil)

	if err := b.EnsurePublicPermissions(context.Background()); err != nil {
		t.Fatalf("EnsurePublicPermissions: %v", err)
	}

	if got := f.count("POST /api/users-permissions/permissions"); got != len(publicActions) {
		t.Errorf("created %d permissions, want %d", got, len(publicActions))
	}
	for _, action := range publicActions {
		if !f.permissions[action] {
			t.Errorf("action %s not enabled", action)
		}
	}
}

func TestEnsurePublicPermissionsIdempotent(t *testing.T) {
	f := newFakeCMS(t)
	for _, action := range publicActions {
		f.permissions[action] = true
	}
	b := newTestBootstrapper(t, f, nil)

	if err := b.EnsurePublicPermissions(context.Background()); err != nil {
		t.Fatalf("EnsurePublicPermissions: %v", err)
	}

	if got := f.count("POST /api/users-permissions/permissions"); got != 0 {
		t.Errorf("created %d permissions on second run, want 0", got)
	}
	if got := f.count("PUT /api/users-permissions/permissions"); got != 0 {
		t.Errorf("updated %d permissions on second run, want 0", got)
	}
}

func TestEnsurePublicPermissionsEnablesDisabled(t *testing.T) {
	f := newFakeCMS(t)
	for _, action := range publicActions {
		f.permissions[action] = false
	}
	b := newTestBootstrapper(t, f, nil)

	if err := b.EnsurePublicPermissions(context.Background()); err != nil {
		t.Fatalf("EnsurePublicPermissions: %v", err)
	}

	if got := f.count("PUT /api/users-permissions/permissions/7"); got != len(publicActions) {
		t.Errorf("enabled %d permissions, want %d", got, len(publicActions))
	}
	if got := f.count("POST /api/users-permissions/permissions"); got != 0 {
		t.Errorf("created %d permissions, want 0", got)
	}
}

func TestEnsurePublicPermissionsNoPublicRole(t *testing.T) {
	f := newFakeCMS(t)
	f.publicRole = false
	b := newTestBootstrapper(t, f, nil)

	if err := b.EnsurePublicPermissions(context.Background()); err != nil {
		t.Fatalf("missing public role must not be an error, got %v", err)
	}
	if got := f.count("GET /api/users-permissions/permissions"); got != 0 {
		t.Errorf("queried permissions without a public role (%d requests)", got)
	}
}

func TestEnsureLocalesCreatesMissing(t *testing.T) {
	f := newFakeCMS(t) // starts with "en" only
	b := newTestBootstrapper(t, f, nil)

	if err := b.EnsureLocales(context.Background()); err != nil {
		t.Fatalf("EnsureLocales: %v", err)
	}

	if got := f.count("POST /api/i18n/locales"); got != 1 {
		t.Errorf("created %d locales, want 1 (ru)", got)
	}
}

func TestProvisionAdminSkippedWithoutCredentials(t *testing.T) {
	f := newFakeCMS(t)
	b := newTestBootstrapper(t, f, &config.Config{})

	if err := b.ProvisionAdmin(context.Background()); err != nil {
		t.Fatalf("ProvisionAdmin: %v", err)
	}
	if got := f.count("POST /admin/register-admin"); got != 0 {
		t.Errorf("registration attempted without credentials (%d requests)", got)
	}
}

func TestProvisionAdminToleratesAlreadyProvisioned(t *testing.T) {
	f := newFakeCMS(t)
	f.failPaths["POST /admin/register-admin"] = http.StatusBadRequest
	cfg := &config.Config{AdminEmail: "admin@iro.by", AdminPassword: "s3cret"}
	b := newTestBootstrapper(t, f, cfg)

	if err := b.ProvisionAdmin(context.Background()); err != nil {
		t.Fatalf("4xx must mean already provisioned, got %v", err)
	}
}

func TestProvisionAdminRegisters(t *testing.T) {
	f := newFakeCMS(t)
	cfg := &config.Config{AdminEmail: "admin@iro.by", AdminPassword: "s3cret"}
	b := newTestBootstrapper(t, f, cfg)

	if err := b.ProvisionAdmin(context.Background()); err != nil {
		t.Fatalf("ProvisionAdmin: %v", err)
	}
	if got := f.count("POST /admin/register-admin"); got != 1 {
		t.Errorf("registration requests = %d, want 1", got)
	}
}
