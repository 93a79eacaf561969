// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package models defines the domain types shared across the store, query,
// relay, and API layers: terminal snapshots, time-series samples, plant
// catalog entries, and the normalized measurand key.
package models
