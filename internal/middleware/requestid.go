// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package middleware

import (
	"net/http"

	"github.com/gridpulse/gridpulse/internal/logging"
)

// RequestIDHeader is the header carrying the request id in both
// directions.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns every request a unique id, honoring one supplied
// by the client, and echoes it back in the response headers. The id is
// stored in the request context for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = logging.GenerateRequestID()
		}

		ctx := logging.ContextWithRequestID(r.Context(), id)
		w.Header().Set(RequestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
