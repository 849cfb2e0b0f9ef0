// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

// Package main is the entry point for the movie recommender server.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered Koanf v2 loading (defaults, YAML file, env)
//  2. Logging: zerolog global logger from configuration
//  3. Catalog: CSV fetch (local path or http URL) into the immutable store
//  4. Engine: TF-IDF vector space model, search index, popularity stats
//  5. HTTP server: Chi router with the recommendation API and /metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, config file (config.yaml),
// built-in defaults. See internal/config for the full schema. The only
// setting without a usable default in an offline deployment is
// CATALOG_SOURCE, which may point at a local CSV file instead of the
// published dataset URL.
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM, draining
// in-flight requests up to server.shutdown_timeout.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JayKCDev/movie-recommendation-system/internal/api"
	"github.com/JayKCDev/movie-recommendation-system/internal/catalog"
	"github.com/JayKCDev/movie-recommendation-system/internal/config"
	"github.com/JayKCDev/movie-recommendation-system/internal/engine"
	"github.com/JayKCDev/movie-recommendation-system/internal/logging"
	"github.com/JayKCDev/movie-recommendation-system/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("source", cfg.Catalog.Source).
		Msg("Starting movie recommender")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := catalog.NewStore()
	eng := engine.New(store, engine.Config{
		Vectorizer: engine.VectorizerConfig{
			OverviewWeight: cfg.Engine.OverviewWeight,
			KeywordWeight:  cfg.Engine.KeywordWeight,
			GenreWeight:    cfg.Engine.GenreWeight,
			TitleWeight:    cfg.Engine.TitleWeight,
			DropSingletons: cfg.Engine.DropSingletons,
		},
		StatsCacheTTL: cfg.Engine.StatsCacheTTL,
	})

	if err := loadAndBuild(ctx, cfg, store, eng); err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation model")
	}

	handler := api.NewHandler(store, eng, cfg)
	router := api.NewRouter(handler, api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	}))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// loadAndBuild fetches the catalog, loads the store, and builds the engine,
// recording the outcome in the build metrics.
func loadAndBuild(ctx context.Context, cfg *config.Config, store *catalog.Store, eng *engine.Engine) error {
	start := time.Now()

	records, err := catalog.LoadRecords(ctx, catalog.LoaderConfig{
		Source:        cfg.Catalog.Source,
		FetchTimeout:  cfg.Catalog.FetchTimeout,
		ListSeparator: cfg.Catalog.ListSeparator,
	})
	if err != nil {
		metrics.RecordModelBuild(time.Since(start), 0, 0, err)
		return fmt.Errorf("load catalog: %w", err)
	}
	metrics.CatalogLoadDuration.Observe(time.Since(start).Seconds())

	if err := store.Load(records); err != nil {
		metrics.RecordModelBuild(time.Since(start), 0, 0, err)
		return fmt.Errorf("ingest catalog: %w", err)
	}

	if err := eng.Build(); err != nil {
		metrics.RecordModelBuild(time.Since(start), 0, 0, err)
		return fmt.Errorf("build model: %w", err)
	}

	info, _ := eng.Info()
	metrics.RecordModelBuild(time.Since(start), info.TotalMovies, info.VocabularySize, nil)
	return nil
}
