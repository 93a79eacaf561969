// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gridpulse/gridpulse/internal/models"
	"github.com/gridpulse/gridpulse/internal/validation"
)

type terminalMeasurandParams struct {
	TerminalID  string `validate:"required,numeric"`
	MeasurandID string `validate:"required"`
}

type dateRangeParams struct {
	From string `validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	To   string `validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type profileParams struct {
	TerminalID  string `validate:"required,numeric"`
	MeasurandID string `validate:"required"`
	Profile     string `validate:"required,oneof=block trend"`
}

// terminalAndKey validates and parses the shared path parameters. On
// failure it writes the 400 response and reports false.
func terminalAndKey(w http.ResponseWriter, r *http.Request) (int, models.MeasurandKey, bool) {
	params := terminalMeasurandParams{
		TerminalID:  chi.URLParam(r, "terminalID"),
		MeasurandID: chi.URLParam(r, "measurandID"),
	}
	if err := validation.ValidateStruct(&params); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return 0, "", false
	}

	terminalID, err := strconv.Atoi(params.TerminalID)
	if err != nil || terminalID <= 0 {
		respondError(w, http.StatusBadRequest, "TerminalID must be a positive integer")
		return 0, "", false
	}
	return terminalID, models.NewMeasurandKey(params.MeasurandID), true
}

// LiveValue handles GET /api/v1/live-value/{terminalID}/measurands/{measurandID}.
func (h *Handler) LiveValue(w http.ResponseWriter, r *http.Request) {
	terminalID, key, ok := terminalAndKey(w, r)
	if !ok {
		return
	}

	value, err := h.queries.LatestValue(r.Context(), terminalID, key)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondSuccess(w, value)
}

// RecentWindow handles
// GET /api/v1/history/{terminalID}/measurands/{measurandID}/last-900.
// An empty window is a success with an empty array, not a 404.
func (h *Handler) RecentWindow(w http.ResponseWriter, r *http.Request) {
	terminalID, key, ok := terminalAndKey(w, r)
	if !ok {
		return
	}

	points, err := h.queries.RecentWindow(r.Context(), terminalID, key)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondSuccessCount(w, points, len(points))
}

// DateRange handles
// GET /api/v1/history/{terminalID}/measurands/{measurandID}/date-range.
// from and to are required RFC3339 query parameters, inclusive bounds.
func (h *Handler) DateRange(w http.ResponseWriter, r *http.Request) {
	terminalID, key, ok := terminalAndKey(w, r)
	if !ok {
		return
	}

	params := dateRangeParams{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if err := validation.ValidateStruct(&params); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Already format-checked by the datetime tag.
	from, _ := time.Parse(time.RFC3339, params.From)
	to, _ := time.Parse(time.RFC3339, params.To)

	points, err := h.queries.Range(r.Context(), terminalID, key, from, to)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondSuccessCount(w, points, len(points))
}

// MeasurandValueByProfile handles GET /api/v1/hdnuts/measurand-value.
// The path is kept for wire compatibility with deployed dashboards.
func (h *Handler) MeasurandValueByProfile(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := profileParams{
		TerminalID:  q.Get("terminalId"),
		MeasurandID: q.Get("measurandId"),
		Profile:     q.Get("profile"),
	}
	if err := validation.ValidateStruct(&params); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	terminalID, err := strconv.Atoi(params.TerminalID)
	if err != nil || terminalID <= 0 {
		respondError(w, http.StatusBadRequest, "TerminalID must be a positive integer")
		return
	}

	value, err := h.queries.ValueByProfile(r.Context(), terminalID,
		models.NewMeasurandKey(params.MeasurandID), params.Profile)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondSuccess(w, value)
}
