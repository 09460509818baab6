// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"time"

	"github.com/iro-by/sitekit-go/internal/config"
)

// New creates the cache backend selected by configuration: Redis when a
// URL is configured, in-memory otherwise.
func New(cfg *config.Config) (Cache, error) {
	ttl := time.Duration(cfg.CacheTTL) * time.Second

	if cfg.UseRedisCache() {
		return NewRedisCache(RedisOptions{
			URL:        cfg.RedisURL,
			Prefix:     cfg.CachePrefix,
			DefaultTTL: ttl,
		})
	}
	return NewMemoryCache(ttl), nil
}
