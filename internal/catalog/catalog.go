// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package catalog is the read side of the site: typed queries against
// the CMS content API with a byte cache in front of every listing.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/iro-by/sitekit-go/internal/cache"
	"github.com/iro-by/sitekit-go/internal/content"
	"github.com/iro-by/sitekit-go/internal/strapi"
)

// Service serves site content reads through the cache.
type Service struct {
	client *strapi.Client
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a catalog service. ttl is the cache lifetime for listings;
// zero uses the cache backend's default.
func New(client *strapi.Client, c cache.Cache, ttl time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, cache: c, ttl: ttl, logger: logger}
}

// cached serves a value from the cache, falling back to fetch and
// storing the result. Cache failures degrade to a direct fetch.
func cached[T any](ctx context.Context, s *Service, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if buf, err := s.cache.Get(ctx, key); err == nil {
		var v T
		if err := json.Unmarshal(buf, &v); err == nil {
			return v, nil
		}
		// Unreadable entry: drop it and refetch
		_ = s.cache.Delete(ctx, key)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("cache read failed", "key", key, "error", err)
	}

	v, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if buf, err := json.Marshal(v); err == nil {
		if err := s.cache.Set(ctx, key, buf, s.ttl); err != nil {
			s.logger.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return v, nil
}

// Articles returns all articles of a locale, newest first.
func (s *Service) Articles(ctx context.Context, locale string) ([]content.Article, error) {
	return cached(ctx, s, "articles:"+locale, func(ctx context.Context) ([]content.Article, error) {
		q := strapi.NewQuery().Locale(locale).PopulateAll().SortDesc("publishedAt")
		resp, err := strapi.Find[content.Article](ctx, s.client, "articles", q)
		if err != nil {
			return nil, fmt.Errorf("fetching articles: %w", err)
		}
		return resp.Data, nil
	})
}

// ArticleBySlug returns one article, or nil when the slug is unknown.
func (s *Service) ArticleBySlug(ctx context.Context, locale, slug string) (*content.Article, error) {
	articles, err := cached(ctx, s, "article:"+locale+":"+slug, func(ctx context.Context) ([]content.Article, error) {
		q := strapi.NewQuery().Locale(locale).PopulateAll().Filter("slug", "$eq", slug).Limit(1)
		resp, err := strapi.Find[content.Article](ctx, s.client, "articles", q)
		if err != nil {
			return nil, fmt.Errorf("fetching article %q: %w", slug, err)
		}
		return resp.Data, nil
	})
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nil
	}
	return &articles[0], nil
}

// FeaturedArticles returns the newest articles up to limit.
func (s *Service) FeaturedArticles(ctx context.Context, locale string, limit int) ([]content.Article, error) {
	key := "articles:featured:" + locale + ":" + strconv.Itoa(limit)
	return cached(ctx, s, key, func(ctx context.Context) ([]content.Article, error) {
		q := strapi.NewQuery().Locale(locale).PopulateAll().SortDesc("publishedAt").Limit(limit)
		resp, err := strapi.Find[content.Article](ctx, s.client, "articles", q)
		if err != nil {
			return nil, fmt.Errorf("fetching featured articles: %w", err)
		}
		return resp.Data, nil
	})
}

// Communities returns all communities in display order.
func (s *Service) Communities(ctx context.Context, locale string) ([]content.Community, error) {
	return cached(ctx, s, "communities:"+locale, func(ctx context.Context) ([]content.Community, error) {
		q := strapi.NewQuery().Locale(locale).PopulateAll().SortAsc("order")
		resp, err := strapi.Find[content.Community](ctx, s.client, "communities", q)
		if err != nil {
			return nil, fmt.Errorf("fetching communities: %w", err)
		}
		return resp.Data, nil
	})
}

// Projects returns all projects in display order.
func (s *Service) Projects(ctx context.Context, locale string) ([]content.Project, error) {
	return cached(ctx, s, "projects:"+locale, func(ctx context.Context) ([]content.Project, error) {
		q := strapi.NewQuery().Locale(locale).PopulateAll().SortAsc("order")
		resp, err := strapi.Find[content.Project](ctx, s.client, "projects", q)
		if err != nil {
			return nil, fmt.Errorf("fetching projects: %w", err)
		}
		return resp.Data, nil
	})
}

// RabbiQAs returns the published ask-the-rabbi answers in display order.
func (s *Service) RabbiQAs(ctx context.Context, locale string) ([]content.RabbiQA, error) {
	return cached(ctx, s, "rabbi-qas:"+locale, func(ctx context.Context) ([]content.RabbiQA, error) {
		q := strapi.NewQuery().Locale(locale).SortAsc("order")
		resp, err := strapi.Find[content.RabbiQA](ctx, s.client, "rabbi-qas", q)
		if err != nil {
			return nil, fmt.Errorf("fetching rabbi QAs: %w", err)
		}
		return resp.Data, nil
	})
}

// Traditions returns the traditions listing in display order.
func (s *Service) Traditions(ctx context.Context, locale string) ([]content.Tradition, error) {
	return cached(ctx, s, "traditions:"+locale, func(ctx context.Context) ([]content.Tradition, error) {
		q := strapi.NewQuery().Locale(locale).SortAsc("order")
		resp, err := strapi.Find[content.Tradition](ctx, s.client, "traditions", q)
		if err != nil {
			return nil, fmt.Errorf("fetching traditions: %w", err)
		}
		return resp.Data, nil
	})
}

// PosterEvents returns upcoming events sorted by date.
func (s *Service) PosterEvents(ctx context.Context, locale string) ([]content.PosterEvent, error) {
	return cached(ctx, s, "poster-events:"+locale, func(ctx context.Context) ([]content.PosterEvent, error) {
		q := strapi.NewQuery().Locale(locale).PopulateAll().SortAsc("date")
		resp, err := strapi.Find[content.PosterEvent](ctx, s.client, "poster-events", q)
		if err != nil {
			return nil, fmt.Errorf("fetching poster events: %w", err)
		}
		return resp.Data, nil
	})
}

// Settings returns the localized site settings, or nil when the CMS is
// unreachable or the single type has no content yet. The site renders
// built-in defaults in that case, so settings errors are never fatal.
func (s *Service) Settings(ctx context.Context, locale string) *content.Setting {
	setting, err := cached(ctx, s, "settings:"+locale, func(ctx context.Context) (*content.Setting, error) {
		q := strapi.NewQuery().Locale(locale)
		resp, err := strapi.FindSingle[content.Setting](ctx, s.client, "setting", q)
		if err != nil {
			return nil, err
		}
		return &resp.Data, nil
	})
	if err != nil {
		s.logger.Warn("fetching settings failed", "locale", locale, "error", err)
		return nil
	}
	return setting
}

// Search finds articles whose title or content contains the query,
// case-insensitively. Results are not cached.
func (s *Service) Search(ctx context.Context, locale, query string) ([]content.Article, error) {
	q := strapi.NewQuery().Locale(locale).PopulateAll().
		FilterOr(0, "title", "$containsi", query).
		FilterOr(1, "content", "$containsi", query)
	resp, err := strapi.Find[content.Article](ctx, s.client, "articles", q)
	if err != nil {
		return nil, fmt.Errorf("searching articles: %w", err)
	}
	return resp.Data, nil
}

// SubmitRabbiQuestion forwards a visitor question to the CMS.
func (s *Service) SubmitRabbiQuestion(ctx context.Context, question content.RabbiQuestion) error {
	if _, err := strapi.Create[strapi.Document](ctx, s.client, "rabbi-questions", nil, question); err != nil {
		return fmt.Errorf("submitting rabbi question: %w", err)
	}
	return nil
}
