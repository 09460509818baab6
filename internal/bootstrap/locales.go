// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package bootstrap

import (
	"context"
	"fmt"

	"github.com/iro-by/sitekit-go/internal/content"
)

// requiredLocales are the locales the site serves. Russian is the
// default locale; English variants attach to Russian documents.
var requiredLocales = []struct {
	Code      string
	Name      string
	IsDefault bool
}{
	{content.LocaleRU, "Russian (ru)", true},
	{content.LocaleEN, "English (en)", false},
}

// EnsureLocales registers any missing site locale in the CMS locale
// plugin. Failures on one locale do not stop the others.
func (b *Bootstrapper) EnsureLocales(ctx context.Context) error {
	existing, err := b.client.ListLocales(ctx)
	if err != nil {
		return fmt.Errorf("listing locales: %w", err)
	}

	have := make(map[string]bool, len(existing))
	for _, loc := range existing {
		have[loc.Code] = true
	}

	for _, loc := range requiredLocales {
		if have[loc.Code] {
			b.logger.Debug("locale already configured", "code", loc.Code)
			continue
		}
		if _, err := b.client.CreateLocale(ctx, loc.Code, loc.Name, loc.IsDefault); err != nil {
			b.logger.Error("creating locale failed", "code", loc.Code, "error", err)
			continue
		}
		b.logger.Info("created locale", "code", loc.Code)
	}
	return nil
}
