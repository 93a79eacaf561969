// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

// Package config loads GridPulse configuration via Koanf v2 with layered
// sources, highest priority last:
//
//  1. Built-in defaults
//  2. Optional YAML config file (CONFIG_PATH, ./config.yaml,
//     /etc/gridpulse/config.yaml)
//  3. Environment variables (MONGO_URI, HTTP_PORT, RELAY_TICK_PERIOD, ...)
//
// The resulting Config is validated before use; the server refuses to
// start on invalid settings.
package config
