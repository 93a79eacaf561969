// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package supervisor builds the suture supervision tree: a messaging
// layer for the relay hub and an api layer for the HTTP server. A
// crash in one layer restarts only that layer's services.
package supervisor
