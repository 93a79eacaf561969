// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gridpulse/gridpulse/internal/catalog"
	"github.com/gridpulse/gridpulse/internal/logging"
	"github.com/gridpulse/gridpulse/internal/models"
	"github.com/gridpulse/gridpulse/internal/store"
)

// Sampling profiles accepted by ValueByProfile.
const (
	ProfileBlock = "block"
	ProfileTrend = "trend"
)

// DefaultWindowSize is the recent-window sample cap when none is
// configured. Matches the bound enforced by upstream ingestion.
const DefaultWindowSize = 900

// TelemetryStore is the slice of the persistence layer the query layer
// reads from.
type TelemetryStore interface {
	LatestSnapshot(ctx context.Context, terminalID int) (*models.TerminalSnapshot, error)
	RecentSamples(ctx context.Context, terminalID, limit int) ([]models.TimeSeriesSample, error)
	SamplesInRange(ctx context.Context, terminalID int, from, to time.Time) ([]models.TimeSeriesSample, error)
	LatestSample(ctx context.Context, tier store.Tier, terminalID int) (*models.TimeSeriesSample, error)
}

// LiveValue is one measurand's current value, resolved for display.
type LiveValue struct {
	MeasurandID   string      `json:"measurandId"`
	MeasurandName string      `json:"measurandName"`
	Value         interface{} `json:"value"`
	Unit          string      `json:"unit,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
}

// SeriesPoint is one measurand value at one instant within a series.
type SeriesPoint struct {
	MeasurandID   string      `json:"measurandId"`
	MeasurandName string      `json:"measurandName"`
	Value         interface{} `json:"value"`
	Timestamp     time.Time   `json:"timestamp"`
}

// Service implements the aggregation queries over a telemetry store and
// a catalog.
type Service struct {
	store      TelemetryStore
	catalog    catalog.Service
	windowSize int
}

// New returns a Service. A non-positive windowSize falls back to
// DefaultWindowSize.
func New(ts TelemetryStore, cat catalog.Service, windowSize int) *Service {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Service{store: ts, catalog: cat, windowSize: windowSize}
}

// LatestValue returns the newest live value of one measurand on one
// terminal. ErrNotFound covers both a terminal without any snapshot and
// a snapshot that lacks the measurand.
func (s *Service) LatestValue(ctx context.Context, terminalID int, key models.MeasurandKey) (*LiveValue, error) {
	snap, err := s.store.LatestSnapshot(ctx, terminalID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	reading, ok := snap.Reading(key)
	if !ok {
		return nil, fmt.Errorf("measurand %s on terminal %d: %w", key, terminalID, ErrNotFound)
	}

	name, unit := s.resolveMeasurand(ctx, terminalID, key, reading.Name)
	return &LiveValue{
		MeasurandID:   key.String(),
		MeasurandName: name,
		Value:         reading.Value,
		Unit:          unit,
		Timestamp:     snap.Timestamp,
	}, nil
}

// RecentWindow returns the newest samples of a terminal reduced to
// series points, newest first. A zero key includes every measurand. No
// matching samples is an empty result, not an error.
func (s *Service) RecentWindow(ctx context.Context, terminalID int, key models.MeasurandKey) ([]SeriesPoint, error) {
	samples, err := s.store.RecentSamples(ctx, terminalID, s.windowSize)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return s.reduce(ctx, terminalID, key, samples), nil
}

// Range returns a terminal's archived samples with timestamps in
// [from, to] inclusive, oldest first, reduced to series points. An
// inverted range yields an empty result.
func (s *Service) Range(ctx context.Context, terminalID int, key models.MeasurandKey, from, to time.Time) ([]SeriesPoint, error) {
	samples, err := s.store.SamplesInRange(ctx, terminalID, from, to)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return s.reduce(ctx, terminalID, key, samples), nil
}

// ValueByProfile returns the newest sample value of one measurand from
// the tier selected by profile: "block" reads the recent window and
// "trend" reads the archive.
func (s *Service) ValueByProfile(ctx context.Context, terminalID int, key models.MeasurandKey, profile string) (*LiveValue, error) {
	var tier store.Tier
	switch profile {
	case ProfileBlock:
		tier = store.TierRecent
	case ProfileTrend:
		tier = store.TierArchive
	default:
		return nil, fmt.Errorf("profile %q: %w", profile, ErrInvalidInput)
	}

	sample, err := s.store.LatestSample(ctx, tier, terminalID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	m, ok := sample.Measurand(key)
	if !ok {
		return nil, fmt.Errorf("measurand %s on terminal %d: %w", key, terminalID, ErrNotFound)
	}

	name, unit := s.resolveMeasurand(ctx, terminalID, key, m.Name)
	return &LiveValue{
		MeasurandID:   m.MeasurandID,
		MeasurandName: name,
		Value:         m.Value,
		Unit:          unit,
		Timestamp:     sample.Timestamp,
	}, nil
}

// reduce flattens samples into series points, keeping only entries the
// key matches and resolving names once per distinct measurand id.
func (s *Service) reduce(ctx context.Context, terminalID int, key models.MeasurandKey, samples []models.TimeSeriesSample) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(samples))
	names := make(map[string]string)

	for _, sample := range samples {
		for _, m := range sample.Measurands {
			if !key.Matches(m.MeasurandID) {
				continue
			}
			name, ok := names[m.MeasurandID]
			if !ok {
				name, _ = s.resolveMeasurand(ctx, terminalID, models.MeasurandKey(m.MeasurandID), m.Name)
				names[m.MeasurandID] = name
			}
			points = append(points, SeriesPoint{
				MeasurandID:   m.MeasurandID,
				MeasurandName: name,
				Value:         m.Value,
				Timestamp:     sample.Timestamp,
			})
		}
	}
	return points
}

// resolveMeasurand looks up the display name and unit for a measurand
// through the catalog. Any catalog miss or failure falls back to the
// raw stored name without failing the request.
func (s *Service) resolveMeasurand(ctx context.Context, terminalID int, key models.MeasurandKey, rawName string) (name, unit string) {
	plant, err := s.catalog.PlantByTerminalID(ctx, terminalID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logging.Warn().Err(err).Int("terminal_id", terminalID).
				Msg("Catalog lookup failed, using stored measurand name")
		}
		return rawName, ""
	}

	desc, ok := plant.Measurand(key)
	if !ok {
		return rawName, ""
	}
	name = desc.DisplayName
	if name == "" {
		name = desc.Name
	}
	if name == "" {
		name = rawName
	}
	return name, desc.Unit
}

// mapStoreErr translates store sentinels into this package's taxonomy,
// leaving transient failures wrapped as-is for the 500 path.
func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
