// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/gridpulse/gridpulse/internal/logging"
	"github.com/gridpulse/gridpulse/internal/query"
)

// Envelope is the uniform response shape. Success carries data and an
// optional count; errors carry only a message.
type Envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
}

// respondJSON writes an envelope with proper headers.
func respondJSON(w http.ResponseWriter, status int, envelope *Envelope) {
	w.Header().Set("Content-Type", "application/json")

	payload, err := json.Marshal(envelope)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess writes a 200 success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, &Envelope{Status: "success", Data: data})
}

// respondSuccessCount writes a 200 success envelope with a count, used
// by the series endpoints.
func respondSuccessCount(w http.ResponseWriter, data interface{}, count int) {
	respondJSON(w, http.StatusOK, &Envelope{Status: "success", Data: data, Count: &count})
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, &Envelope{Status: "error", Message: message})
}

// respondQueryError maps the query layer's taxonomy onto HTTP codes.
// Transient store failures become an opaque 500 so storage internals
// stay out of responses.
func respondQueryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, query.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, query.ErrNotFound):
		respondError(w, http.StatusNotFound, "no data for the requested terminal and measurand")
	default:
		logging.Error().Err(err).
			Str("request_id", logging.RequestIDFromContext(r.Context())).
			Str("path", r.URL.Path).
			Msg("telemetry query failed")
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
