// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package store

import "errors"

// ErrNotFound indicates the requested document does not exist. Callers
// match it with errors.Is; anything else from this package is a
// transient store failure.
var ErrNotFound = errors.New("store: not found")
