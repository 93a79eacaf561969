// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package logging provides centralized zerolog-based logging for GridPulse.
//
// The package exposes a global logger configured once at startup:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("terminal_id", 6).Msg("subscription started")
//
// Request and correlation IDs travel via context (see context.go), and an
// slog adapter bridges zerolog to libraries that expect *slog.Logger
// (the suture event hook).
package logging
