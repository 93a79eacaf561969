// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package api

import (
	"context"
	"time"

	"github.com/gridpulse/gridpulse/internal/config"
	"github.com/gridpulse/gridpulse/internal/models"
	"github.com/gridpulse/gridpulse/internal/query"
	"github.com/gridpulse/gridpulse/internal/relay"
)

// TelemetryQueries is the aggregation layer the handlers call. Kept
// as an interface so handler tests run against a fake.
type TelemetryQueries interface {
	LatestValue(ctx context.Context, terminalID int, key models.MeasurandKey) (*query.LiveValue, error)
	RecentWindow(ctx context.Context, terminalID int, key models.MeasurandKey) ([]query.SeriesPoint, error)
	Range(ctx context.Context, terminalID int, key models.MeasurandKey, from, to time.Time) ([]query.SeriesPoint, error)
	ValueByProfile(ctx context.Context, terminalID int, key models.MeasurandKey, profile string) (*query.LiveValue, error)
}

// Pinger reports storage liveness for the readiness endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains the dependencies of the HTTP surface.
type Handler struct {
	queries   TelemetryQueries
	store     Pinger
	hub       *relay.Hub
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler.
func NewHandler(queries TelemetryQueries, store Pinger, hub *relay.Hub, cfg *config.Config) *Handler {
	return &Handler{
		queries:   queries,
		store:     store,
		hub:       hub,
		config:    cfg,
		startTime: time.Now(),
	}
}
