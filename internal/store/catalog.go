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

	"github.com/gridpulse/gridpulse/internal/metrics"
	"github.com/gridpulse/gridpulse/internal/models"
)

// PlantByID returns the catalog entry for a plant.
func (s *Store) PlantByID(ctx context.Context, plantID int) (*models.PlantCatalogEntry, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	start := time.Now()
	var plant models.PlantCatalogEntry
	err := s.plants.FindOne(ctx, plantByIDFilter(plantID)).Decode(&plant)
	metrics.ObserveStoreQuery("plant_by_id", s.plants.Name(), time.Since(start), queryErr(err))

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("plant %d: %w", plantID, ErrNotFound)
		}
		return nil, fmt.Errorf("plant %d: %w", plantID, err)
	}
	normalizePlant(&plant)
	return &plant, nil
}

// PlantByTerminalID returns the plant whose terminal list contains the
// given terminal id. Returns ErrNotFound when no plant references it.
func (s *Store) PlantByTerminalID(ctx context.Context, terminalID int) (*models.PlantCatalogEntry, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	start := time.Now()
	var plant models.PlantCatalogEntry
	err := s.plants.FindOne(ctx, plantByTerminalFilter(terminalID)).Decode(&plant)
	metrics.ObserveStoreQuery("plant_by_terminal", s.plants.Name(), time.Since(start), queryErr(err))

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("plant for terminal %d: %w", terminalID, ErrNotFound)
		}
		return nil, fmt.Errorf("plant for terminal %d: %w", terminalID, err)
	}
	normalizePlant(&plant)
	return &plant, nil
}

// normalizePlant coerces measurand descriptor ids into canonical key form.
func normalizePlant(p *models.PlantCatalogEntry) {
	for i := range p.Measurands {
		p.Measurands[i].MeasurandID = models.NewMeasurandKey(p.Measurands[i].MeasurandID).String()
	}
}
