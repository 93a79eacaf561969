// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package metrics registers the Prometheus collectors for GridPulse:
// API request counts and latencies, telemetry store query performance,
// relay connection/subscription gauges, and catalog cache efficiency.
package metrics
