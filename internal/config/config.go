// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the sitekit configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// CMS connection
	CMSURL   string `env:"SITEKIT_CMS_URL" envDefault:"http://localhost:1337"`
	CMSToken string `env:"SITEKIT_CMS_TOKEN"` // Optional API token; anonymous requests when empty

	LogLevel string `env:"SITEKIT_LOG_LEVEL" envDefault:"info"`

	// Companion HTTP service
	ServerHost     string   `env:"SITEKIT_SERVER_HOST" envDefault:"localhost"`
	ServerPort     int      `env:"SITEKIT_SERVER_PORT" envDefault:"8090"`
	AllowedOrigins []string `env:"SITEKIT_ALLOWED_ORIGINS" envSeparator:","`

	// Cache configuration
	RedisURL    string `env:"SITEKIT_REDIS_URL"` // Optional Redis URL for distributed caching
	CachePrefix string `env:"SITEKIT_CACHE_PREFIX" envDefault:"sitekit:"`
	CacheTTL    int    `env:"SITEKIT_CACHE_TTL" envDefault:"300"` // Default cache TTL in seconds

	// Seeding configuration
	SeedImagesDir string `env:"SITEKIT_SEED_IMAGES_DIR" envDefault:"./seed-images"`

	// Direct CMS database access for media link rows
	CMSDBDriver string `env:"SITEKIT_CMS_DB_DRIVER" envDefault:"sqlite"` // sqlite or mysql
	CMSDBDSN    string `env:"SITEKIT_CMS_DB_DSN"`

	// Admin auto-provisioning; skipped entirely when email or password is unset
	AdminEmail     string `env:"SITEKIT_ADMIN_EMAIL"`
	AdminPassword  string `env:"SITEKIT_ADMIN_PASSWORD"`
	AdminFirstname string `env:"SITEKIT_ADMIN_FIRSTNAME" envDefault:"Site"`
	AdminLastname  string `env:"SITEKIT_ADMIN_LASTNAME" envDefault:"Admin"`

	// Default city for Shabbat times
	ShabbatCity string `env:"SITEKIT_SHABBAT_CITY" envDefault:"minsk"`
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// AdminProvisioningEnabled returns true when admin auto-creation credentials are set.
func (c Config) AdminProvisioningEnabled() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

// MediaLinkingEnabled returns true when direct CMS database access is configured.
func (c Config) MediaLinkingEnabled() bool {
	return c.CMSDBDSN != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate CMS URL early; every outbound request depends on it
	u, err := url.Parse(cfg.CMSURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("SITEKIT_CMS_URL %q is not a valid absolute URL", cfg.CMSURL)
	}
	cfg.CMSURL = strings.TrimRight(cfg.CMSURL, "/")

	switch cfg.CMSDBDriver {
	case "sqlite", "mysql":
	default:
		return nil, fmt.Errorf("SITEKIT_CMS_DB_DRIVER must be sqlite or mysql, got %q", cfg.CMSDBDriver)
	}

	return cfg, nil
}
