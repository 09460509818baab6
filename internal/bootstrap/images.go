// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package bootstrap

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/iro-by/sitekit-go/internal/strapi"
)

// attachImages uploads the local image set of each seeded document and
// links the uploads to its storage rows. Images live in per-slug
// directories under the configured seed images root; a missing
// directory or one without recognized image files is skipped silently.
func (b *Bootstrapper) attachImages(ctx context.Context, kind contentKind, field string, docs map[string]string) {
	if b.linker == nil {
		b.logger.Debug("media linking not configured, skipping image attachment")
		return
	}

	slugs := make([]string, 0, len(docs))
	for slug := range docs {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		fileIDs := b.uploadImageDir(ctx, filepath.Join(b.cfg.SeedImagesDir, slug), slug)
		if len(fileIDs) == 0 {
			continue
		}
		if err := b.linker.LinkFiles(ctx, kind.table, kind.uid, field, docs[slug], fileIDs); err != nil {
			b.logger.Error("linking images failed", "type", kind.label, "slug", slug, "error", err)
			continue
		}
		b.logger.Info("attached images", "type", kind.label, "slug", slug, "count", len(fileIDs))
	}
}

// uploadImageDir uploads every recognized image in a directory, in file
// name order, and returns the created media ids. Files that do not
// decode as images are skipped with a warning.
func (b *Bootstrapper) uploadImageDir(ctx context.Context, dir, altText string) []int {
	files, err := listImages(dir)
	if err != nil {
		b.logger.Error("reading image directory failed", "dir", dir, "error", err)
		return nil
	}

	var fileIDs []int
	for _, path := range files {
		if _, err := imaging.Open(path); err != nil {
			b.logger.Warn("skipping undecodable image", "file", path, "error", err)
			continue
		}
		media, err := b.client.UploadFile(ctx, path, altText)
		if err != nil {
			b.logger.Error("uploading image failed", "file", path, "error", err)
			continue
		}
		fileIDs = append(fileIDs, media.ID)
	}
	return fileIDs
}

// listImages returns the recognized image files of a directory sorted
// by name. A missing directory yields no files and no error.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strapi.MimeTypeForFile(entry.Name()) == "" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
