// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package bootstrap prepares a fresh CMS instance for the site: public
// API permissions, locales, the first admin account, and the initial
// bilingual content set with its images.
package bootstrap

import (
	"context"
	"log/slog"

	"github.com/iro-by/sitekit-go/internal/config"
	"github.com/iro-by/sitekit-go/internal/strapi"
)

// MediaLinker attaches uploaded files to seeded entries. Satisfied by
// *medialink.Store; nil disables image attachment.
type MediaLinker interface {
	LinkFiles(ctx context.Context, table, relatedType, field, documentID string, fileIDs []int) error
}

// Bootstrapper runs the CMS preparation phases.
type Bootstrapper struct {
	client *strapi.Client
	cfg    *config.Config
	logger *slog.Logger
	linker MediaLinker
}

// New creates a Bootstrapper. linker may be nil when direct CMS
// database access is not configured; image attachment is then skipped.
func New(client *strapi.Client, cfg *config.Config, logger *slog.Logger, linker MediaLinker) *Bootstrapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bootstrapper{
		client: client,
		cfg:    cfg,
		logger: logger,
		linker: linker,
	}
}

// Run executes all bootstrap phases in order. The preparation phases
// (permissions, locales, admin) log failures and continue so that a
// partially configured CMS still receives as much setup as possible;
// a seeding failure is returned to the caller.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if err := b.EnsurePublicPermissions(ctx); err != nil {
		b.logger.Error("permission bootstrap failed", "error", err)
	}
	if err := b.EnsureLocales(ctx); err != nil {
		b.logger.Error("locale bootstrap failed", "error", err)
	}
	if err := b.ProvisionAdmin(ctx); err != nil {
		b.logger.Error("admin provisioning failed", "error", err)
	}
	return b.Seed(ctx)
}
