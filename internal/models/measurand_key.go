// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MeasurandKey is the normalized identifier for a measurand.
//
// Upstream ingestion is inconsistent about measurand identity: the live
// snapshot keeps a map keyed by string ("2", "02"), while time-series
// samples carry a numeric field. MeasurandKey collapses both
// representations into a single canonical form so downstream code never
// branches on representation: a numeric string is reduced to its base-10
// integer form, anything else is kept verbatim.
//
// The zero value is the wildcard key: it matches every measurand. History
// subscriptions without an explicit measurand use it to select all series.
type MeasurandKey string

// NewMeasurandKey canonicalizes a raw string into a MeasurandKey.
func NewMeasurandKey(raw string) MeasurandKey {
	return MeasurandKey(canonicalKey(raw))
}

// MeasurandKeyFromInt builds a key from a numeric identifier.
func MeasurandKeyFromInt(id int64) MeasurandKey {
	return MeasurandKey(strconv.FormatInt(id, 10))
}

// canonicalKey reduces numeric strings to their base-10 integer form.
// "02" and "2" identify the same measurand; "L1-N" stays as-is.
func canonicalKey(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return raw
}

// IsZero reports whether the key is the wildcard key.
func (k MeasurandKey) IsZero() bool { return k == "" }

// Matches reports whether the key selects the measurand identified by raw.
// The wildcard key matches everything.
func (k MeasurandKey) Matches(raw string) bool {
	if k.IsZero() {
		return true
	}
	return string(k) == canonicalKey(raw)
}

func (k MeasurandKey) String() string { return string(k) }

// MarshalJSON emits the canonical string form.
func (k MeasurandKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(k))
}

// UnmarshalJSON accepts either a JSON string or a JSON number, matching
// what dashboard clients actually send over the wire.
func (k *MeasurandKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*k = NewMeasurandKey(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*k = NewMeasurandKey(n.String())
		return nil
	}
	return fmt.Errorf("measurand key must be a string or number, got %s", string(data))
}
