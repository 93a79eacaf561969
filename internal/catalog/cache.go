// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/gridpulse/gridpulse/internal/metrics"
	"github.com/gridpulse/gridpulse/internal/models"
)

// DefaultCacheTTL bounds staleness for catalog metadata, which changes
// rarely compared to telemetry.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	plant   *models.PlantCatalogEntry
	expires time.Time
}

// CachedService is a read-through cache in front of another Service.
// Entries are keyed both by plant id and by terminal id so either
// lookup path warms the other.
type CachedService struct {
	next Service
	ttl  time.Duration

	mu         sync.RWMutex
	byPlant    map[int]cacheEntry
	byTerminal map[int]cacheEntry

	// now is swapped in tests.
	now func() time.Time
}

// NewCachedService wraps next with a TTL cache. A non-positive ttl
// falls back to DefaultCacheTTL.
func NewCachedService(next Service, ttl time.Duration) *CachedService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedService{
		next:       next,
		ttl:        ttl,
		byPlant:    make(map[int]cacheEntry),
		byTerminal: make(map[int]cacheEntry),
		now:        time.Now,
	}
}

func (c *CachedService) PlantByID(ctx context.Context, plantID int) (*models.PlantCatalogEntry, error) {
	if plant, ok := c.lookup(c.byPlant, plantID); ok {
		return plant, nil
	}

	plant, err := c.next.PlantByID(ctx, plantID)
	if err != nil {
		return nil, err
	}
	c.admit(plant)
	return plant, nil
}

func (c *CachedService) PlantByTerminalID(ctx context.Context, terminalID int) (*models.PlantCatalogEntry, error) {
	if plant, ok := c.lookup(c.byTerminal, terminalID); ok {
		return plant, nil
	}

	plant, err := c.next.PlantByTerminalID(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	c.admit(plant)
	return plant, nil
}

// Invalidate drops a plant and all of its terminal keys. Used when an
// operator edits catalog metadata and wants it visible immediately.
func (c *CachedService) Invalidate(plantID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.byPlant[plantID]
	delete(c.byPlant, plantID)
	if !ok || entry.plant == nil {
		return
	}
	for _, term := range entry.plant.Terminals {
		delete(c.byTerminal, term.TerminalID)
	}
}

func (c *CachedService) lookup(m map[int]cacheEntry, key int) (*models.PlantCatalogEntry, bool) {
	c.mu.RLock()
	entry, ok := m[key]
	c.mu.RUnlock()

	if ok && c.now().Before(entry.expires) {
		metrics.CatalogCacheHits.Inc()
		return entry.plant, true
	}
	metrics.CatalogCacheMisses.Inc()
	return nil, false
}

func (c *CachedService) admit(plant *models.PlantCatalogEntry) {
	entry := cacheEntry{plant: plant, expires: c.now().Add(c.ttl)}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byPlant[plant.PlantID] = entry
	for _, term := range plant.Terminals {
		c.byTerminal[term.TerminalID] = entry
	}
}
