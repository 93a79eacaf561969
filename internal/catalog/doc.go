// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package catalog resolves plant, terminal, and measurand metadata.
//
// The plain service reads the plants collection on every call. Wrap it
// with NewCachedService to serve repeated lookups from an in-memory
// read-through cache with a TTL; the query layer only sees the Service
// interface and does not care which one it holds.
package catalog
