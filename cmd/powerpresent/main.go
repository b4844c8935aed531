// Package main is the entry point for the PowerPresent template API
// server. It loads configuration, connects to services, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abrar408/powerpresent-templates/internal/cache"
	"github.com/Abrar408/powerpresent-templates/internal/config"
	"github.com/Abrar408/powerpresent-templates/internal/database"
	"github.com/Abrar408/powerpresent-templates/internal/engine"
	"github.com/Abrar408/powerpresent-templates/internal/handlers"
	"github.com/Abrar408/powerpresent-templates/internal/middleware"
	"github.com/Abrar408/powerpresent-templates/internal/publisher"
	"github.com/Abrar408/powerpresent-templates/internal/renderer"
	"github.com/Abrar408/powerpresent-templates/internal/router"
	"github.com/Abrar408/powerpresent-templates/internal/session"
	"github.com/Abrar408/powerpresent-templates/internal/storage"
	"github.com/Abrar408/powerpresent-templates/internal/store"
)

func main() {
	// Structured logger — text output, debug level.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"styles_dir", cfg.StylesDir,
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

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (render cache + token store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	sessionStore := session.NewStore(valkeyClient)
	renderCache := cache.NewRenderCache(valkeyClient, cache.DefaultRenderTTL)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	templateStore := store.NewTemplateStore(db)
	slideStore := store.NewSlideStore(db)
	variationStore := store.NewVariationStore(db)
	mediaStore := store.NewMediaStore(db)

	// Connect to S3-compatible object storage (optional — the API works
	// without it, with media uploads disabled).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
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
				"bucket", cfg.S3Bucket,
			)
		}
	} else {
		slog.Warn("s3 storage not configured — media uploads disabled")
	}

	// Rendering pipeline: element renderer, template engine, stylesheet
	// publisher.
	eng := engine.New(templateStore, renderer.New(cfg.MediaBaseURL))
	pub := publisher.New(cfg.StylesDir)

	// The bulk copy endpoint duplicates every slide in the system, so it
	// gets a tight per-client rate limit.
	copyLimiter := middleware.NewRateLimiter(5, time.Minute)
	defer copyLimiter.Stop()

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(userStore, sessionStore)
	templateHandlers := handlers.NewTemplates(templateStore, eng, pub, renderCache, storageClient)
	slideHandlers := handlers.NewSlides(slideStore, templateStore, eng, pub, renderCache)
	variationHandlers := handlers.NewVariations(slideStore, variationStore, renderCache)
	mediaHandlers := handlers.NewMedia(mediaStore, storageClient)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, copyLimiter, authHandlers, templateHandlers, slideHandlers, variationHandlers, mediaHandlers)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// the bulk copy endpoint, which touches every slide in one request.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
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
