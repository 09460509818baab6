// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package bootstrap

import (
	"context"
	"fmt"
)

// publicActions is the set of content API actions the anonymous site
// visitor needs. Read access for every displayed type, plus create on
// rabbi questions so the ask-the-rabbi form works without a token.
var publicActions = []string{
	"api::community.community.find",
	"api::community.community.findOne",
	"api::project.project.find",
	"api::project.project.findOne",
	"api::category.category.find",
	"api::category.category.findOne",
	"api::article.article.find",
	"api::article.article.findOne",
	"api::setting.setting.find",
	"api::rabbi-qa.rabbi-qa.find",
	"api::tradition.tradition.find",
	"api::poster-event.poster-event.find",
	"api::rabbi-question.rabbi-question.create",
}

// EnsurePublicPermissions grants the public role every action in
// publicActions. A missing public role is logged and skipped rather
// than treated as fatal; individual action failures are logged and the
// remaining actions are still processed.
func (b *Bootstrapper) EnsurePublicPermissions(ctx context.Context) error {
	role, err := b.client.PublicRole(ctx)
	if err != nil {
		return fmt.Errorf("looking up public role: %w", err)
	}
	if role == nil {
		b.logger.Warn("public role not found, skipping permission setup")
		return nil
	}

	for _, action := range publicActions {
		if err := b.ensurePermission(ctx, role.ID, action); err != nil {
			b.logger.Error("enabling permission failed", "action", action, "error", err)
		}
	}
	return nil
}

// ensurePermission makes (role, action) exist and be enabled. Existing
// enabled rows are left untouched so repeated runs are no-ops.
func (b *Bootstrapper) ensurePermission(ctx context.Context, roleID int, action string) error {
	perm, err := b.client.FindPermission(ctx, roleID, action)
	if err != nil {
		return err
	}

	switch {
	case perm == nil:
		if _, err := b.client.CreatePermission(ctx, roleID, action); err != nil {
			return err
		}
		b.logger.Info("created permission", "action", action)
	case !perm.Enabled:
		if err := b.client.EnablePermission(ctx, perm.ID); err != nil {
			return err
		}
		b.logger.Info("enabled permission", "action", action)
	default:
		b.logger.Debug("permission already enabled", "action", action)
	}
	return nil
}
