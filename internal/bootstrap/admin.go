// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/iro-by/sitekit-go/internal/strapi"
)

// ProvisionAdmin registers the first admin account when credentials are
// configured. The registration endpoint only works while the CMS has no
// admin at all, so a 4xx response means the instance is already
// provisioned and is not an error.
func (b *Bootstrapper) ProvisionAdmin(ctx context.Context) error {
	if !b.cfg.AdminProvisioningEnabled() {
		b.logger.Debug("admin credentials not configured, skipping provisioning")
		return nil
	}

	err := b.client.RegisterAdmin(ctx,
		b.cfg.AdminEmail, b.cfg.AdminPassword, b.cfg.AdminFirstname, b.cfg.AdminLastname)
	if err != nil {
		var apiErr *strapi.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			b.logger.Info("admin account already provisioned", "email", b.cfg.AdminEmail)
			return nil
		}
		return fmt.Errorf("registering admin account: %w", err)
	}

	b.logger.Info("registered admin account", "email", b.cfg.AdminEmail)
	return nil
}
