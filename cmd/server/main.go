// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package main is the entry point for the GridPulse server.
//
// GridPulse relays live and historical energy telemetry from a MongoDB
// store to dashboard clients, over REST for one-shot reads and over
// websockets for periodically refreshed subscriptions.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered Koanf v2 load (defaults, YAML, env vars)
//  2. Storage: MongoDB connection with a startup ping (fatal on failure)
//  3. Catalog: plant metadata service behind a TTL cache
//  4. Query layer: aggregation over the store and catalog
//  5. Relay hub: websocket client registry and subscription loops
//  6. HTTP server: chi router with the REST and websocket surface
//  7. Supervisor tree: suture-managed lifecycle for hub and server
//
// Graceful shutdown on SIGINT/SIGTERM: new connections stop, in-flight
// requests get the configured shutdown timeout, websocket clients are
// closed by the hub.
//
// Example:
//
//	export MONGO_URI=mongodb://localhost:27017
//	export MONGO_DATABASE=telemetry
//	./gridpulse
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gridpulse/gridpulse/internal/api"
	"github.com/gridpulse/gridpulse/internal/catalog"
	"github.com/gridpulse/gridpulse/internal/config"
	"github.com/gridpulse/gridpulse/internal/logging"
	"github.com/gridpulse/gridpulse/internal/query"
	"github.com/gridpulse/gridpulse/internal/relay"
	"github.com/gridpulse/gridpulse/internal/store"
	"github.com/gridpulse/gridpulse/internal/supervisor"
	"github.com/gridpulse/gridpulse/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
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
		Str("addr", cfg.Server.Addr()).
		Str("mongo_database", cfg.Mongo.Database).
		Dur("tick_period", cfg.Relay.TickPeriod).
		Msg("Starting GridPulse")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The store must answer a ping before we serve anything; a relay
	// with no storage behind it only produces error frames.
	st, err := store.Connect(ctx, &cfg.Mongo)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			logging.Error().Err(err).Msg("Error closing MongoDB connection")
		}
	}()
	logging.Info().Msg("MongoDB connection established")

	cat := catalog.NewCachedService(catalog.NewService(st), catalog.DefaultCacheTTL)
	queries := query.New(st, cat, cfg.API.RecentWindowSize)

	hub := relay.NewHub()
	handler := api.NewHandler(queries, st, hub, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeCfg)
	tree.AddMessagingService(services.NewRelayHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).
			Dur("timeout", cfg.Server.ShutdownTimeout).
			Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("GridPulse stopped gracefully")
}
