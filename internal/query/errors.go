// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package query

import "errors"

var (
	// ErrNotFound reports that the requested terminal or measurand has
	// no data. Maps to HTTP 404 and websocket error frames.
	ErrNotFound = errors.New("query: not found")

	// ErrInvalidInput reports a request parameter the layer cannot act
	// on, such as an unknown profile. Maps to HTTP 400.
	ErrInvalidInput = errors.New("query: invalid input")
)
