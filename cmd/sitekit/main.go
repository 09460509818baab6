// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

// sitekit is the backend companion of the iro.by site: it prepares a
// fresh CMS instance (permissions, locales, admin account, bilingual
// seed content with images) and serves the site's auxiliary HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/iro-by/sitekit-go/internal/bootstrap"
	"github.com/iro-by/sitekit-go/internal/cache"
	"github.com/iro-by/sitekit-go/internal/config"
	"github.com/iro-by/sitekit-go/internal/hebcal"
	"github.com/iro-by/sitekit-go/internal/medialink"
	"github.com/iro-by/sitekit-go/internal/server"
	"github.com/iro-by/sitekit-go/internal/strapi"
	"github.com/iro-by/sitekit-go/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "sitekit - iro.by site backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Commands:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  bootstrap   Prepare the CMS: permissions, locales, admin, seed content\n")
		_, _ = fmt.Fprintf(os.Stderr, "  seed        Seed bilingual content only\n")
		_, _ = fmt.Fprintf(os.Stderr, "  serve       Run the companion HTTP service\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEKIT_CMS_URL         CMS base URL (default: http://localhost:1337)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEKIT_CMS_TOKEN       CMS API token (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEKIT_CMS_DB_DSN      CMS database DSN for media linking (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEKIT_SERVER_PORT     Companion server port (default: 8090)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEKIT_REDIS_URL       Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEKIT_ADMIN_EMAIL     First admin email (enables provisioning)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEKIT_ADMIN_PASSWORD  First admin password\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEKIT_SEED_IMAGES_DIR Seed image directory (default: ./seed-images)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Handle -v/-version flag
	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		fmt.Println(info.String())
		os.Exit(0)
	}

	command := flag.Arg(0)
	if command == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(command); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(command string) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	client := strapi.New(cfg.CMSURL, cfg.CMSToken, strapi.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch command {
	case "bootstrap":
		b, closeLinker, err := newBootstrapper(cfg, client, logger)
		if err != nil {
			return err
		}
		defer closeLinker()
		return b.Run(ctx)

	case "seed":
		b, closeLinker, err := newBootstrapper(cfg, client, logger)
		if err != nil {
			return err
		}
		defer closeLinker()
		return b.Seed(ctx)

	case "serve":
		c, err := cache.New(cfg)
		if err != nil {
			return fmt.Errorf("initializing cache: %w", err)
		}
		defer func() { _ = c.Close() }()

		srv := server.New(cfg, client, hebcal.New(""), c, logger)
		return srv.Run(ctx)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// newBootstrapper wires the bootstrapper with an optional media linker.
// The returned func closes the linker's database connection.
func newBootstrapper(cfg *config.Config, client *strapi.Client, logger *slog.Logger) (*bootstrap.Bootstrapper, func(), error) {
	var linker bootstrap.MediaLinker
	closeLinker := func() {}

	if cfg.MediaLinkingEnabled() {
		store, err := medialink.Open(cfg.CMSDBDriver, cfg.CMSDBDSN, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("opening CMS database: %w", err)
		}
		linker = store
		closeLinker = func() { _ = store.Close() }
	} else {
		logger.Info("CMS database not configured, image attachment disabled")
	}

	return bootstrap.New(client, cfg, logger, linker), closeLinker, nil
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) *slog.Logger {
	logLevel := slog.LevelInfo
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}
