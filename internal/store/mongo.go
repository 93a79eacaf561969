// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/gridpulse/gridpulse/internal/config"
	"github.com/gridpulse/gridpulse/internal/logging"
)

// Store wraps the MongoDB client and the collections this service reads.
type Store struct {
	client       *mongo.Client
	queryTimeout time.Duration

	live    *mongo.Collection
	recent  *mongo.Collection
	archive *mongo.Collection
	plants  *mongo.Collection
}

// Connect establishes the MongoDB connection and verifies it with a ping.
// A failure here is fatal to startup; the server cannot run without its
// telemetry store.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	logging.Info().
		Str("database", cfg.Database).
		Str("live_collection", cfg.LiveCollection).
		Msg("telemetry store connected")

	return &Store{
		client:       client,
		queryTimeout: cfg.QueryTimeout,
		live:         db.Collection(cfg.LiveCollection),
		recent:       db.Collection(cfg.RecentCollection),
		archive:      db.Collection(cfg.ArchiveCollection),
		plants:       db.Collection(cfg.PlantsCollection),
	}, nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping verifies the store is reachable; used by the readiness endpoint.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

// queryErr filters out the no-document case so missing data does not
// count as a store failure in metrics.
func queryErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}

// opContext bounds a single query with the configured timeout.
func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
