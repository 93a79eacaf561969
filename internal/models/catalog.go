// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package models

// Plant categories. A plant either groups terminals (bridges, feeders)
// or defines a measurand schema shared by its terminals.
const (
	PlantCategoryTerminal  = "terminal"
	PlantCategoryMeasurand = "measurand"
)

// TerminalDescriptor maps a terminal's internal identity to its display
// name within one plant. Terminal ids are unique per plant, not globally.
type TerminalDescriptor struct {
	TerminalID  int    `bson:"terminal_id" json:"terminalId"`
	Name        string `bson:"name" json:"name"`
	DisplayName string `bson:"display_name" json:"displayName"`
}

// MeasurandDescriptor maps a measurand's internal identity to its display
// name and unit within one plant.
type MeasurandDescriptor struct {
	MeasurandID string `bson:"measurand_id" json:"measurandId"`
	Name        string `bson:"name" json:"name"`
	DisplayName string `bson:"display_name" json:"displayName"`
	Unit        string `bson:"unit" json:"unit"`
}

// PlantCatalogEntry is one document from the plants collection. Managed
// by admin tooling outside this service; read-only here.
type PlantCatalogEntry struct {
	PlantID    int                   `bson:"plant_id" json:"plantId"`
	PlantName  string                `bson:"plant_name" json:"plantName"`
	Category   string                `bson:"category" json:"category"`
	Terminals  []TerminalDescriptor  `bson:"terminals" json:"terminals"`
	Measurands []MeasurandDescriptor `bson:"measurands" json:"measurands"`
}

// Terminal returns the plant's descriptor for the given terminal id.
func (p *PlantCatalogEntry) Terminal(terminalID int) (TerminalDescriptor, bool) {
	for _, t := range p.Terminals {
		if t.TerminalID == terminalID {
			return t, true
		}
	}
	return TerminalDescriptor{}, false
}

// Measurand returns the plant's descriptor matching the key.
func (p *PlantCatalogEntry) Measurand(key MeasurandKey) (MeasurandDescriptor, bool) {
	for _, m := range p.Measurands {
		if key.Matches(m.MeasurandID) {
			return m, true
		}
	}
	return MeasurandDescriptor{}, false
}
