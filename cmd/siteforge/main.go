// Package main is the entry point for the SiteForge generation server.
// It loads configuration, connects to whichever collaborators are
// configured, sets up routing, and starts the HTTP server with graceful
// shutdown support.
//
// Every collaborator is optional by design: without PostgreSQL the
// service issues demo identifiers, without Valkey it skips record
// caching, without AI keys the agents produce deterministic fallbacks,
// and without S3 the hero images keep their provider URLs.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siteforge/internal/ai"
	"siteforge/internal/cache"
	"siteforge/internal/config"
	"siteforge/internal/database"
	"siteforge/internal/generator"
	"siteforge/internal/handlers"
	"siteforge/internal/middleware"
	"siteforge/internal/router"
	"siteforge/internal/storage"
	"siteforge/internal/store"
)

func main() {
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
	)

	// Connect to PostgreSQL when configured. Persistence is optional:
	// generation still succeeds without it, handing out demo identifiers.
	var db *sql.DB
	if cfg.HasDatabase() {
		db, err = database.Connect(cfg.DSN())
		if err != nil {
			slog.Warn("database unavailable — running without persistence", "error", err)
			db = nil
		} else {
			defer db.Close()
			if err := database.Migrate(db); err != nil {
				slog.Error("failed to run migrations", "error", err)
				os.Exit(1)
			}
		}
	} else {
		slog.Warn("database not configured — generated sites get demo identifiers")
	}

	var websiteStore *store.WebsiteStore
	var storeForGenerator generator.WebsiteStore
	if db != nil {
		websiteStore = store.NewWebsiteStore(db)
		storeForGenerator = websiteStore
	}

	// Connect to Valkey when configured; the record cache fronts the
	// preview-data endpoint.
	var recordCache *cache.WebsiteCache
	if cfg.HasValkey() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable — running without record cache", "error", err)
		} else {
			defer valkeyClient.Close()
			recordCache = cache.NewWebsiteCache(valkeyClient, cache.DefaultWebsiteTTL)
		}
	} else {
		slog.Warn("valkey not configured — record caching disabled")
	}

	// Connect to S3-compatible object storage (optional — hero images
	// keep their provider URLs without it).
	var storageClient *storage.Client
	if cfg.HasObjectStorage() {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		}
	} else {
		slog.Warn("s3 storage not configured — hero image mirroring disabled")
	}

	// Initialize the AI provider registry. Providers without keys are
	// skipped; an empty registry means all agents use their fallbacks.
	providers := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai":  {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, ImageModel: cfg.OpenAIImageModel, BaseURL: cfg.OpenAIBaseURL},
		"mistral": {APIKey: cfg.MistralKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", providers.ActiveName(),
		"configured", providers.Configured(),
		"available", providers.Available(),
	)

	gen := generator.New(providers, storeForGenerator, recordCache, storageClient)
	api := handlers.NewAPI(gen, websiteStore, recordCache, cfg.PublicURL)

	// Generation fans out to paid APIs; keep the endpoint throttled.
	limiter := middleware.NewRateLimiter(10, time.Minute)
	defer limiter.Stop()

	r := router.New(api, limiter)

	// WriteTimeout must accommodate the generation pipeline, which waits
	// on LLM and image responses (typically 10-30s, up to 60s).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
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
