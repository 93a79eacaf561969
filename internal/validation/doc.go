// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package validation provides struct validation using
// go-playground/validator v10 behind a thread-safe singleton. Handlers
// bind query and path parameters into small request structs and let
// the tags speak: required, numeric, datetime, oneof, min.
package validation
