// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package query is the aggregation layer between transports and storage.
//
// It turns raw store documents into dashboard-facing values: it picks
// the measurand a caller asked for out of a snapshot or sample, resolves
// display names through the catalog, and reduces time-series documents
// to flat points. Both the REST handlers and the websocket relay sit on
// top of this package and nothing else.
package query
