// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package relay streams telemetry to dashboard clients over websockets.
//
// Unlike a broadcast hub, delivery here is per-subscription: each
// connected client names one terminal/measurand it wants, and a polling
// goroutine re-runs the matching query on a fixed period and pushes the
// result down that one connection. A connection holds at most one
// active subscription; a new subscription frame replaces the old loop.
package relay
