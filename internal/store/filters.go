// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Filter and sort builders, kept as pure functions so the query shapes
// are unit-testable without a running MongoDB.

// terminalFilter selects documents for one terminal.
func terminalFilter(terminalID int) bson.D {
	return bson.D{{Key: "terminal_id", Value: terminalID}}
}

// rangeFilter selects one terminal's samples with timestamp in
// [from, to] inclusive. An inverted range (from > to) simply matches
// nothing; no swapping is performed.
func rangeFilter(terminalID int, from, to time.Time) bson.D {
	return bson.D{
		{Key: "terminal_id", Value: terminalID},
		{Key: "timestamp", Value: bson.D{
			{Key: "$gte", Value: from},
			{Key: "$lte", Value: to},
		}},
	}
}

// plantByTerminalFilter selects the plant whose terminal list references
// the terminal id.
func plantByTerminalFilter(terminalID int) bson.D {
	return bson.D{{Key: "terminals.terminal_id", Value: terminalID}}
}

// plantByIDFilter selects a plant by its id.
func plantByIDFilter(plantID int) bson.D {
	return bson.D{{Key: "plant_id", Value: plantID}}
}

// sortNewestFirst orders by capture timestamp descending.
func sortNewestFirst() bson.D {
	return bson.D{{Key: "timestamp", Value: -1}}
}

// sortOldestFirst orders by capture timestamp ascending.
func sortOldestFirst() bson.D {
	return bson.D{{Key: "timestamp", Value: 1}}
}
