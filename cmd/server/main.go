// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/tomtom215/stringwise/docs" // registers swagger docs
	"github.com/tomtom215/stringwise/internal/analysis"
	"github.com/tomtom215/stringwise/internal/api"
	"github.com/tomtom215/stringwise/internal/blobstore"
	"github.com/tomtom215/stringwise/internal/cache"
	"github.com/tomtom215/stringwise/internal/config"
	"github.com/tomtom215/stringwise/internal/database"
	"github.com/tomtom215/stringwise/internal/llm"
	"github.com/tomtom215/stringwise/internal/logging"
	"github.com/tomtom215/stringwise/internal/profile"
	"github.com/tomtom215/stringwise/internal/supervisor"
	"github.com/tomtom215/stringwise/internal/supervisor/services"
	"github.com/tomtom215/stringwise/internal/sync"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Str("llm_provider", cfg.LLM.Provider).
		Msg("Starting Stringwise")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	blobs, err := blobstore.Open(cfg.Summary.StorePath)
	if err != nil {
		_ = db.Close()
		logging.Fatal().Err(err).Msg("Failed to open blob store")
	}
	defer func() {
		if err := blobs.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing blob store")
		}
	}()

	countryCache := cache.New("countries", cfg.Countries.CacheTTL)
	defer countryCache.Close()

	countryManager := sync.NewCountryManager(
		&cfg.Countries,
		sync.NewRestCountriesClient(cfg.Countries.CountriesURL, cfg.Countries.Timeout),
		sync.NewExchangeRateClient(cfg.Countries.ExchangeURL, cfg.Countries.Timeout),
		db,
		blobs,
		countryCache,
	)

	llmClient, err := llm.New(&cfg.LLM)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize language model client")
	}

	profiles := profile.NewService(
		db,
		sync.NewCatFactClient(cfg.CatFacts.URL, cfg.CatFacts.Timeout),
		&cfg.Profile,
	)

	handler := api.NewHandler(
		cfg,
		db,
		analysis.NewService(db, analysis.PalindromeMode(cfg.Analysis.PalindromeMode)),
		countryManager,
		blobs,
		countryCache,
		llm.NewRephraser(llmClient),
		profiles,
	)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:              addr,
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// A refresh fetches two upstreams before writing.
		WriteTimeout: cfg.Server.Timeout + 2*cfg.Countries.Timeout,
		IdleTimeout:  2 * time.Minute,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Countries.RefreshInterval > 0 || cfg.Countries.RefreshOnStartup {
		tree.AddSyncService(services.NewCountryRefreshService(
			countryManager, cfg.Countries.RefreshInterval, cfg.Countries.RefreshOnStartup))
		logging.Info().
			Dur("interval", cfg.Countries.RefreshInterval).
			Bool("on_startup", cfg.Countries.RefreshOnStartup).
			Msg("Scheduled country refresh enabled")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, addr, shutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Stringwise stopped")
}
