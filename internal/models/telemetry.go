// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package models

import "time"

// MeasurandReading is a single measurand entry inside a live snapshot.
// Value is numeric or string-typed depending on the measurand (power in
// watts vs. a status text); the store preserves whatever was ingested.
type MeasurandReading struct {
	Name  string      `bson:"name" json:"measurandName"`
	Value interface{} `bson:"value" json:"value"`
}

// TerminalSnapshot is one document from the live collection: the complete
// set of measurand values captured for a terminal at one instant. The
// current snapshot for a terminal is the one with the maximum timestamp.
//
// Snapshots are written by the external ingestion process and are
// immutable here; they are only superseded by newer captures.
type TerminalSnapshot struct {
	TerminalID   int                         `bson:"terminal_id" json:"terminalId"`
	TerminalName string                      `bson:"terminal_name" json:"terminalName"`
	Timestamp    time.Time                   `bson:"timestamp" json:"timestamp"`
	Measurands   map[string]MeasurandReading `bson:"measurands" json:"measurands"`
}

// Normalize re-keys the measurand map into canonical key form. Applied
// once when a query result is ingested so later lookups are plain map
// accesses.
func (s *TerminalSnapshot) Normalize() {
	if len(s.Measurands) == 0 {
		return
	}
	normalized := make(map[string]MeasurandReading, len(s.Measurands))
	for raw, r := range s.Measurands {
		normalized[NewMeasurandKey(raw).String()] = r
	}
	s.Measurands = normalized
}

// Reading returns the snapshot's entry for the given key, honoring the
// key's coercion rules ("02" finds a map entry stored under "2").
func (s *TerminalSnapshot) Reading(key MeasurandKey) (MeasurandReading, bool) {
	if r, ok := s.Measurands[key.String()]; ok {
		return r, true
	}
	for raw, r := range s.Measurands {
		if key.Matches(raw) {
			return r, true
		}
	}
	return MeasurandReading{}, false
}

// SampleMeasurand is one measurand entry inside a time-series sample.
// MeasurandID is stored in canonical key form.
type SampleMeasurand struct {
	MeasurandID string      `bson:"measurand_id" json:"measurandId"`
	Name        string      `bson:"name" json:"measurandName"`
	Value       interface{} `bson:"value" json:"value"`
}

// TimeSeriesSample is one document from either time-series tier. The
// recent-window tier holds roughly the newest 900 samples per terminal
// (bounded by upstream ingestion, not by this service); the archive tier
// is unbounded. Both tiers share this shape. Samples are immutable.
type TimeSeriesSample struct {
	TerminalID   int               `bson:"terminal_id" json:"terminalId"`
	TerminalName string            `bson:"terminal_name" json:"terminalName"`
	Timestamp    time.Time         `bson:"timestamp" json:"timestamp"`
	Bucket       string            `bson:"bucket" json:"bucket"`
	Measurands   []SampleMeasurand `bson:"measurands" json:"measurands"`
}

// Normalize coerces each entry's measurand id into canonical key form.
func (s *TimeSeriesSample) Normalize() {
	for i := range s.Measurands {
		s.Measurands[i].MeasurandID = NewMeasurandKey(s.Measurands[i].MeasurandID).String()
	}
}

// Measurand returns the sample's entry matching the key.
func (s *TimeSeriesSample) Measurand(key MeasurandKey) (SampleMeasurand, bool) {
	for _, m := range s.Measurands {
		if key.Matches(m.MeasurandID) {
			return m, true
		}
	}
	return SampleMeasurand{}, false
}
