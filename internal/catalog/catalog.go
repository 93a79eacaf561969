// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package catalog

import (
	"context"

	"github.com/gridpulse/gridpulse/internal/models"
)

// Service resolves catalog metadata for plants and terminals.
type Service interface {
	// PlantByID returns the catalog entry for a plant, or a
	// store.ErrNotFound wrapped error when no such plant exists.
	PlantByID(ctx context.Context, plantID int) (*models.PlantCatalogEntry, error)

	// PlantByTerminalID returns the plant whose terminal list contains
	// the given terminal, or a store.ErrNotFound wrapped error.
	PlantByTerminalID(ctx context.Context, terminalID int) (*models.PlantCatalogEntry, error)
}

// PlantStore is the slice of the persistence layer the catalog needs.
type PlantStore interface {
	PlantByID(ctx context.Context, plantID int) (*models.PlantCatalogEntry, error)
	PlantByTerminalID(ctx context.Context, terminalID int) (*models.PlantCatalogEntry, error)
}

type service struct {
	store PlantStore
}

// NewService returns a Service backed directly by the plant store.
func NewService(store PlantStore) Service {
	return &service{store: store}
}

func (s *service) PlantByID(ctx context.Context, plantID int) (*models.PlantCatalogEntry, error) {
	return s.store.PlantByID(ctx, plantID)
}

func (s *service) PlantByTerminalID(ctx context.Context, terminalID int) (*models.PlantCatalogEntry, error) {
	return s.store.PlantByTerminalID(ctx, terminalID)
}
