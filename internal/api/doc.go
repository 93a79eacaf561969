// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package api exposes the REST and websocket surface.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, dependency interfaces
//   - handlers_telemetry.go: live-value, history, and profile endpoints
//   - handlers_health.go: health and readiness endpoints
//   - handlers_ws.go: websocket upgrade into the relay
//   - response.go: the response envelope and error mapping
//   - chi_router.go: route and middleware wiring
package api
