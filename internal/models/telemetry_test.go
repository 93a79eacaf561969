// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package models

import (
	"testing"
	"time"
)

func TestTerminalSnapshotNormalize(t *testing.T) {
	t.Parallel()

	snap := TerminalSnapshot{
		TerminalID: 4,
		Timestamp:  time.Now(),
		Measurands: map[string]MeasurandReading{
			"02":      {Name: "Active Power", Value: 1500.0},
			"7":       {Name: "Frequency", Value: 49.98},
			"status":  {Name: "Breaker Status", Value: "closed"},
			"  0042 ": {Name: "Reactive Power", Value: 120.5},
		},
	}
	snap.Normalize()

	for _, key := range []string{"2", "7", "status", "42"} {
		if _, ok := snap.Measurands[key]; !ok {
			t.Errorf("expected normalized key %q in measurand map, have %v", key, snap.Measurands)
		}
	}
	if _, ok := snap.Measurands["02"]; ok {
		t.Error("raw key \"02\" should have been re-keyed to \"2\"")
	}
}

func TestTerminalSnapshotReading(t *testing.T) {
	t.Parallel()

	snap := TerminalSnapshot{
		Measurands: map[string]MeasurandReading{
			"2":    {Name: "Active Power", Value: 1500.0},
			"freq": {Name: "Frequency", Value: 49.98},
		},
	}

	tests := []struct {
		name     string
		key      string
		wantName string
		wantOK   bool
	}{
		{"exact numeric", "2", "Active Power", true},
		{"coerced numeric", "02", "Active Power", true},
		{"string key", "freq", "Frequency", true},
		{"absent", "9", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reading, ok := snap.Reading(NewMeasurandKey(tt.key))
			if ok != tt.wantOK {
				t.Fatalf("Reading(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if ok && reading.Name != tt.wantName {
				t.Errorf("Reading(%q).Name = %q, want %q", tt.key, reading.Name, tt.wantName)
			}
		})
	}
}

func TestTimeSeriesSampleNormalizeAndLookup(t *testing.T) {
	t.Parallel()

	sample := TimeSeriesSample{
		TerminalID: 9,
		Measurands: []SampleMeasurand{
			{MeasurandID: "007", Name: "Voltage L1", Value: 231.4},
			{MeasurandID: "temp", Name: "Oil Temperature", Value: 54.1},
		},
	}
	sample.Normalize()

	if sample.Measurands[0].MeasurandID != "7" {
		t.Errorf("Normalize left MeasurandID %q, want %q", sample.Measurands[0].MeasurandID, "7")
	}

	if _, ok := sample.Measurand(NewMeasurandKey("07")); !ok {
		t.Error("coerced key \"07\" should find measurand \"7\"")
	}
	if _, ok := sample.Measurand(NewMeasurandKey("9")); ok {
		t.Error("key \"9\" should not match any measurand")
	}

	// The wildcard key selects the first entry.
	m, ok := sample.Measurand(MeasurandKey(""))
	if !ok || m.MeasurandID != "7" {
		t.Errorf("wildcard lookup = (%v, %v), want first measurand", m, ok)
	}
}
