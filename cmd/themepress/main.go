// Package main is the entry point for the ThemePress theme engine server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"themepress/internal/audit"
	"themepress/internal/cache"
	"themepress/internal/config"
	"themepress/internal/database"
	"themepress/internal/handlers"
	"themepress/internal/publish"
	"themepress/internal/router"
	"themepress/internal/storage"
	"themepress/internal/store"
	"themepress/internal/theme"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load a local .env file when present. Missing files are fine; real
	// deployments configure through the environment.
	_ = godotenv.Load()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the default theme (no-op if themes already exist).
	if err := database.Seed(db); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (optional — without it the stylesheet endpoint
	// serves straight from the database).
	var stylesheets *cache.StylesheetCache
	if cfg.ValkeyHost != "" {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		stylesheets = cache.NewStylesheetCache(valkeyClient)
	} else {
		slog.Warn("valkey not configured — stylesheet cache disabled")
	}

	// Connect to S3-compatible object storage (optional — without it the
	// stylesheet is not mirrored to object storage and asset URLs are empty).
	var storageClient *storage.Client
	storageClient, err = storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"bucket", storageClient.Bucket(),
		)
	} else {
		slog.Warn("s3 storage not configured — stylesheet publishes to cache only")
	}

	// Initialize data stores.
	themeStore := store.NewThemeStore(db)
	backupStore := store.NewBackupStore(db)
	activityStore := store.NewActivityStore(db)
	assetStore := store.NewAssetStore(db)

	// Wire the theme manager over its collaborators.
	recorder := audit.New(activityStore)
	publisher := publish.New(stylesheets, storageClient)
	manager := theme.NewManager(themeStore, backupStore, recorder, publisher)

	// Create handler groups with their dependencies.
	themeHandlers := handlers.NewThemes(manager)
	backupHandlers := handlers.NewBackups(manager)
	styleHandlers := handlers.NewStyles(manager, stylesheets)
	assetHandlers := handlers.NewAssets(assetStore, storageClient)

	// Set up the Chi router with all middleware and routes.
	r := router.New(themeHandlers, backupHandlers, styleHandlers, assetHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
