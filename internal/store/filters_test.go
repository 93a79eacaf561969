// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTerminalFilter(t *testing.T) {
	t.Parallel()

	filter := terminalFilter(4)
	if len(filter) != 1 || filter[0].Key != "terminal_id" || filter[0].Value != 4 {
		t.Errorf("terminalFilter(4) = %v", filter)
	}
}

func TestRangeFilterInclusiveBounds(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	filter := rangeFilter(4, from, to)

	if len(filter) != 2 {
		t.Fatalf("rangeFilter has %d elements, want 2", len(filter))
	}
	if filter[0].Key != "terminal_id" || filter[0].Value != 4 {
		t.Errorf("first element = %v, want terminal_id filter", filter[0])
	}

	bounds, ok := filter[1].Value.(bson.D)
	if !ok {
		t.Fatalf("timestamp bounds = %T, want bson.D", filter[1].Value)
	}
	if bounds[0].Key != "$gte" || !bounds[0].Value.(time.Time).Equal(from) {
		t.Errorf("lower bound = %v, want $gte %v", bounds[0], from)
	}
	if bounds[1].Key != "$lte" || !bounds[1].Value.(time.Time).Equal(to) {
		t.Errorf("upper bound = %v, want $lte %v", bounds[1], to)
	}
}

func TestPlantFilters(t *testing.T) {
	t.Parallel()

	byTerminal := plantByTerminalFilter(7)
	if byTerminal[0].Key != "terminals.terminal_id" || byTerminal[0].Value != 7 {
		t.Errorf("plantByTerminalFilter(7) = %v", byTerminal)
	}

	byID := plantByIDFilter(1)
	if byID[0].Key != "plant_id" || byID[0].Value != 1 {
		t.Errorf("plantByIDFilter(1) = %v", byID)
	}
}

func TestSortOrders(t *testing.T) {
	t.Parallel()

	if s := sortNewestFirst(); s[0].Key != "timestamp" || s[0].Value != -1 {
		t.Errorf("sortNewestFirst() = %v", s)
	}
	if s := sortOldestFirst(); s[0].Key != "timestamp" || s[0].Value != 1 {
		t.Errorf("sortOldestFirst() = %v", s)
	}
}

func TestTierCollectionUnknown(t *testing.T) {
	t.Parallel()

	s := &Store{}
	if _, err := s.tierCollection(Tier("hourly")); err == nil {
		t.Error("unknown tier should be rejected")
	}
}

func TestQueryErrFiltersNoDocuments(t *testing.T) {
	t.Parallel()

	if queryErr(nil) != nil {
		t.Error("nil error should stay nil")
	}
	if queryErr(mongo.ErrNoDocuments) != nil {
		t.Error("missing documents are not a store failure")
	}
	wrapped := fmt.Errorf("find: %w", mongo.ErrNoDocuments)
	if queryErr(wrapped) != nil {
		t.Error("wrapped ErrNoDocuments should be filtered too")
	}
	boom := errors.New("socket closed")
	if queryErr(boom) == nil {
		t.Error("real failures must pass through")
	}
}

func TestErrNotFoundSentinel(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("snapshot for terminal 4: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped sentinel should match with errors.Is")
	}
}
