// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package middleware holds the HTTP middleware shared by the REST
// surface: request id propagation and prometheus instrumentation.
package middleware
