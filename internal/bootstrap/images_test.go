// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package bootstrap

import (
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/iro-by/sitekit-go/internal/config"
	"github.com/iro-by/sitekit-go/internal/strapi"
)

// recordingLinker captures LinkFiles calls instead of touching a database.
type recordingLinker struct {
	mu    sync.Mutex
	calls []linkCall
}

type linkCall struct {
	table, relatedType, field, documentID string
	fileIDs                               []int
}

func (l *recordingLinker) LinkFiles(_ context.Context, table, relatedType, field, documentID string, fileIDs []int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, linkCall{table, relatedType, field, documentID, fileIDs})
	return nil
}

// writePNG writes a small valid PNG so uploads and decoding succeed.
func writePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

// newUploadServer serves /api/upload with incrementing media ids.
func newUploadServer(t *testing.T) *strapi.Client {
	t.Helper()
	var mu sync.Mutex
	nextID := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		mu.Lock()
		nextID++
		id := nextID
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": id, "name": "img"}})
	}))
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return strapi.New(srv.URL, "", strapi.WithLogger(logger))
}

func TestAttachImages(t *testing.T) {
	dir := t.TempDir()
	imgDir := filepath.Join(dir, "lapidarium")
	if err := os.Mkdir(imgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(imgDir, "01-stones.png"))
	writePNG(t, filepath.Join(imgDir, "02-opening.png"))

	linker := &recordingLinker{}
	cfg := &config.Config{SeedImagesDir: dir}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := New(newUploadServer(t), cfg, logger, linker)

	b.attachImages(context.Background(), kindProject, "images", map[string]string{"lapidarium": "doc-42"})

	if len(linker.calls) != 1 {
		t.Fatalf("link calls = %d, want 1", len(linker.calls))
	}
	call := linker.calls[0]
	if call.table != "projects" || call.relatedType != "api::project.project" || call.field != "images" {
		t.Errorf("call = %+v", call)
	}
	if call.documentID != "doc-42" {
		t.Errorf("documentID = %q, want doc-42", call.documentID)
	}
	if len(call.fileIDs) != 2 || call.fileIDs[0] != 1 || call.fileIDs[1] != 2 {
		t.Errorf("fileIDs = %v, want [1 2] in file name order", call.fileIDs)
	}
}

func TestAttachImagesMissingDirSkipped(t *testing.T) {
	linker := &recordingLinker{}
	cfg := &config.Config{SeedImagesDir: filepath.Join(t.TempDir(), "absent")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := New(newUploadServer(t), cfg, logger, linker)

	b.attachImages(context.Background(), kindProject, "images", map[string]string{"lapidarium": "doc-42"})

	if len(linker.calls) != 0 {
		t.Errorf("link calls = %d, want 0 for missing directory", len(linker.calls))
	}
}

func TestAttachImagesIgnoresUnrecognizedFiles(t *testing.T) {
	dir := t.TempDir()
	imgDir := filepath.Join(dir, "lapidarium")
	if err := os.Mkdir(imgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(imgDir, "photo.png"))
	if err := os.WriteFile(filepath.Join(imgDir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	linker := &recordingLinker{}
	cfg := &config.Config{SeedImagesDir: dir}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := New(newUploadServer(t), cfg, logger, linker)

	b.attachImages(context.Background(), kindProject, "images", map[string]string{"lapidarium": "doc-42"})

	if len(linker.calls) != 1 || len(linker.calls[0].fileIDs) != 1 {
		t.Fatalf("calls = %+v, want one call with one file", linker.calls)
	}
}

func TestAttachImagesNilLinker(t *testing.T) {
	cfg := &config.Config{SeedImagesDir: t.TempDir()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := New(newUploadServer(t), cfg, logger, nil)

	// Must not panic without a configured linker
	b.attachImages(context.Background(), kindProject, "images", map[string]string{"x": "doc-1"})
}

func TestListImagesSorted(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"))
	writePNG(t, filepath.Join(dir, "a.png"))

	files, err := listImages(dir)
	if err != nil {
		t.Fatalf("listImages: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.png" || filepath.Base(files[1]) != "b.png" {
		t.Errorf("files = %v, want ascending name order", files)
	}
}
