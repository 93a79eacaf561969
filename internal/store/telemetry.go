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

	"github.com/gridpulse/gridpulse/internal/metrics"
	"github.com/gridpulse/gridpulse/internal/models"
)

// Tier selects one of the two time-series storage tiers.
type Tier string

const (
	// TierRecent is the bounded-recency tier (newest ~900 samples per
	// terminal, bound enforced by upstream ingestion).
	TierRecent Tier = "recent"

	// TierArchive is the unbounded full-history tier.
	TierArchive Tier = "archive"
)

// tierCollection maps a tier to its collection.
func (s *Store) tierCollection(tier Tier) (*mongo.Collection, error) {
	switch tier {
	case TierRecent:
		return s.recent, nil
	case TierArchive:
		return s.archive, nil
	default:
		return nil, fmt.Errorf("unknown storage tier %q", tier)
	}
}

// LatestSnapshot returns the newest live snapshot for a terminal.
// Returns ErrNotFound when the terminal has no snapshot at all.
func (s *Store) LatestSnapshot(ctx context.Context, terminalID int) (*models.TerminalSnapshot, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	start := time.Now()
	var snap models.TerminalSnapshot
	err := s.live.FindOne(ctx, terminalFilter(terminalID),
		options.FindOne().SetSort(sortNewestFirst())).Decode(&snap)
	metrics.ObserveStoreQuery("latest_snapshot", s.live.Name(), time.Since(start), queryErr(err))

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("snapshot for terminal %d: %w", terminalID, ErrNotFound)
		}
		return nil, fmt.Errorf("latest snapshot for terminal %d: %w", terminalID, err)
	}
	snap.Normalize()
	return &snap, nil
}

// RecentSamples returns up to limit newest samples for a terminal from
// the recent-window tier, newest first. No samples is not an error.
func (s *Store) RecentSamples(ctx context.Context, terminalID, limit int) ([]models.TimeSeriesSample, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	start := time.Now()
	cur, err := s.recent.Find(ctx, terminalFilter(terminalID),
		options.Find().SetSort(sortNewestFirst()).SetLimit(int64(limit)))
	if err != nil {
		metrics.ObserveStoreQuery("recent_samples", s.recent.Name(), time.Since(start), queryErr(err))
		return nil, fmt.Errorf("recent samples for terminal %d: %w", terminalID, err)
	}
	samples, err := decodeSamples(ctx, cur)
	metrics.ObserveStoreQuery("recent_samples", s.recent.Name(), time.Since(start), queryErr(err))
	if err != nil {
		return nil, fmt.Errorf("recent samples for terminal %d: %w", terminalID, err)
	}
	return samples, nil
}

// SamplesInRange returns a terminal's archived samples with timestamp in
// [from, to] inclusive, oldest first. An inverted range yields an empty
// result rather than an error.
func (s *Store) SamplesInRange(ctx context.Context, terminalID int, from, to time.Time) ([]models.TimeSeriesSample, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	start := time.Now()
	cur, err := s.archive.Find(ctx, rangeFilter(terminalID, from, to),
		options.Find().SetSort(sortOldestFirst()))
	if err != nil {
		metrics.ObserveStoreQuery("samples_in_range", s.archive.Name(), time.Since(start), queryErr(err))
		return nil, fmt.Errorf("samples in range for terminal %d: %w", terminalID, err)
	}
	samples, err := decodeSamples(ctx, cur)
	metrics.ObserveStoreQuery("samples_in_range", s.archive.Name(), time.Since(start), queryErr(err))
	if err != nil {
		return nil, fmt.Errorf("samples in range for terminal %d: %w", terminalID, err)
	}
	return samples, nil
}

// LatestSample returns the newest sample for a terminal from the given
// tier. Returns ErrNotFound when the tier holds nothing for the terminal.
func (s *Store) LatestSample(ctx context.Context, tier Tier, terminalID int) (*models.TimeSeriesSample, error) {
	coll, err := s.tierCollection(tier)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	start := time.Now()
	var sample models.TimeSeriesSample
	err = coll.FindOne(ctx, terminalFilter(terminalID),
		options.FindOne().SetSort(sortNewestFirst())).Decode(&sample)
	metrics.ObserveStoreQuery("latest_sample", coll.Name(), time.Since(start), queryErr(err))

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("latest %s sample for terminal %d: %w", tier, terminalID, ErrNotFound)
		}
		return nil, fmt.Errorf("latest %s sample for terminal %d: %w", tier, terminalID, err)
	}
	sample.Normalize()
	return &sample, nil
}

// decodeSamples drains a cursor into normalized samples.
func decodeSamples(ctx context.Context, cur *mongo.Cursor) ([]models.TimeSeriesSample, error) {
	defer cur.Close(ctx)

	var samples []models.TimeSeriesSample
	if err := cur.All(ctx, &samples); err != nil {
		return nil, err
	}
	for i := range samples {
		samples[i].Normalize()
	}
	return samples, nil
}
