// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gridpulse/gridpulse/internal/middleware"
)

// NewRouter wires the chi router: global middleware, the telemetry
// endpoints under /api/v1, health, websocket, and optionally /metrics.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	// CORS must be global to handle OPTIONS preflight.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.config.Security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.Limit(h.config.API.RateLimitHealthReqs, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP)))
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.Limit(h.config.API.RateLimitReqs, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP)))
		r.Use(middleware.PrometheusMetrics)

		r.Get("/live-value/{terminalID}/measurands/{measurandID}", h.LiveValue)
		r.Get("/history/{terminalID}/measurands/{measurandID}/last-900", h.RecentWindow)
		r.Get("/history/{terminalID}/measurands/{measurandID}/date-range", h.DateRange)
		r.Get("/hdnuts/measurand-value", h.MeasurandValueByProfile)
		r.Get("/ws", h.WebSocket)
	})

	if h.config.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}
