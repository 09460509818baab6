// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package bootstrap

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/iro-by/sitekit-go/internal/content"
	"github.com/iro-by/sitekit-go/internal/strapi"
	"github.com/iro-by/sitekit-go/internal/util"
)

// contentKind describes one seeded content type: its API path segment,
// content type uid and database table.
type contentKind struct {
	label  string
	plural string
	uid    string
	table  string
}

var (
	kindCommunity   = contentKind{"community", "communities", "api::community.community", "communities"}
	kindProject     = contentKind{"project", "projects", "api::project.project", "projects"}
	kindCategory    = contentKind{"category", "categories", "api::category.category", "categories"}
	kindArticle     = contentKind{"article", "articles", "api::article.article", "articles"}
	kindRabbiQA     = contentKind{"rabbi-qa", "rabbi-qas", "api::rabbi-qa.rabbi-qa", "rabbi_qas"}
	kindTradition   = contentKind{"tradition", "traditions", "api::tradition.tradition", "traditions"}
	kindPosterEvent = contentKind{"poster-event", "poster-events", "api::poster-event.poster-event", "poster_events"}
)

// markdown renders seed content bodies. The seed tables keep article
// and project bodies as markdown source; the CMS stores rendered HTML.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Seed populates an empty CMS with the default bilingual content set.
// A single existing Russian community means a previous run already
// touched this instance and the whole run is skipped. Individual item
// failures are logged and the batch continues; writes are sequential so
// documentId capture stays ordered.
func (b *Bootstrapper) Seed(ctx context.Context) error {
	seeded, err := b.alreadySeeded(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing content: %w", err)
	}
	if seeded {
		b.logger.Info("content already present, skipping seeding")
		return nil
	}

	seed := content.DefaultSeed()

	b.seedPairs(ctx, kindCommunity, seed.Communities)
	projectDocs := b.seedPairs(ctx, kindProject, seed.Projects)
	b.seedSettings(ctx, seed.Settings)
	b.seedPairs(ctx, kindCategory, seed.Categories)
	b.seedPairs(ctx, kindArticle, seed.Articles)
	b.seedPairs(ctx, kindRabbiQA, seed.RabbiQAs)
	b.seedPairs(ctx, kindTradition, seed.Traditions)
	b.seedPairs(ctx, kindPosterEvent, seed.PosterEvents)

	b.attachImages(ctx, kindProject, "images", projectDocs)

	b.logger.Info("seeding finished")
	return nil
}

// alreadySeeded reports whether the instance carries any Russian
// community record, the proxy for "seeding already ran".
func (b *Bootstrapper) alreadySeeded(ctx context.Context) (bool, error) {
	q := strapi.NewQuery().Locale(content.LocaleRU).Limit(1)
	resp, err := strapi.Find[strapi.Document](ctx, b.client, kindCommunity.plural, q)
	if err != nil {
		return false, err
	}
	return len(resp.Data) > 0, nil
}

// seedPairs creates all locale pairs of one content type and returns
// the documentId of each successfully created pair keyed by its slug.
func (b *Bootstrapper) seedPairs(ctx context.Context, kind contentKind, pairs []content.LocalePair) map[string]string {
	docs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		slug := pairSlug(pair)
		if slug != "" && !util.IsValidSlug(slug) {
			b.logger.Warn("seed entry has a malformed slug", "type", kind.label, "slug", slug)
		}
		docID, err := b.seedPair(ctx, kind, pair)
		if err != nil {
			b.logger.Error("seeding item failed",
				"type", kind.label, "slug", slug, "error", err)
			continue
		}
		if slug != "" {
			docs[slug] = docID
		}
	}
	return docs
}

// pairSlug returns the declared shared slug of a seed entry, deriving
// one from the Russian name or title when the entry carries none, so
// image directories can still be matched to the document.
func pairSlug(pair content.LocalePair) string {
	if slug, ok := pair.Shared["slug"].(string); ok && slug != "" {
		return slug
	}
	for _, key := range []string{"name", "title"} {
		if v, ok := pair.RU[key].(string); ok && v != "" {
			return util.Slugify(v)
		}
	}
	return ""
}

// seedPair creates the Russian variant of one item, then attaches the
// English variant to the returned documentId.
func (b *Bootstrapper) seedPair(ctx context.Context, kind contentKind, pair content.LocalePair) (string, error) {
	ruQuery := strapi.NewQuery().Locale(content.LocaleRU).Status("published")
	created, err := strapi.Create[strapi.Document](ctx, b.client, kind.plural, ruQuery, renderBody(pair.Merged(content.LocaleRU)))
	if err != nil {
		return "", fmt.Errorf("creating ru variant: %w", err)
	}

	docID := created.Data.DocumentID
	if docID == "" {
		return "", fmt.Errorf("create response carried no documentId")
	}

	enQuery := strapi.NewQuery().Locale(content.LocaleEN).Status("published")
	if _, err := strapi.Update[strapi.Document](ctx, b.client, kind.plural, docID, enQuery, renderBody(pair.Merged(content.LocaleEN))); err != nil {
		return "", fmt.Errorf("attaching en variant to %s: %w", docID, err)
	}

	b.logger.Info("seeded item", "type", kind.label, "documentId", docID, "slug", pair.Shared["slug"])
	return docID, nil
}

// seedSettings writes both locale variants of the settings single type.
func (b *Bootstrapper) seedSettings(ctx context.Context, pair content.LocalePair) {
	for _, locale := range []string{content.LocaleRU, content.LocaleEN} {
		q := strapi.NewQuery().Locale(locale).Status("published")
		if _, err := strapi.UpdateSingle[strapi.Document](ctx, b.client, "setting", q, pair.Merged(locale)); err != nil {
			b.logger.Error("seeding settings failed", "locale", locale, "error", err)
			continue
		}
		b.logger.Info("seeded settings", "locale", locale)
	}
}

// renderBody renders the markdown "content" field to HTML, leaving all
// other fields as declared.
func renderBody(fields content.Fields) content.Fields {
	raw, ok := fields["content"].(string)
	if !ok || raw == "" {
		return fields
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(raw), &buf); err != nil {
		return fields
	}

	out := make(content.Fields, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	out["content"] = buf.String()
	return out
}
