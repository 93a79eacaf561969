// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package store provides read-only access to the MongoDB telemetry store:
// the live snapshot collection, the two time-series tiers (recent window
// and archive), and the plant catalog. All writes happen in the external
// ingestion pipeline; this service never mutates telemetry data.
package store
