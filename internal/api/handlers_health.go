// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package api

import (
	"net/http"
	"time"
)

type healthStatus struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
	RelayClients  int    `json:"relayClients"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, healthStatus{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		RelayClients:  h.hub.ClientCount(),
	})
}

// HealthLive handles GET /api/v1/health/live. Process-up only, no
// dependency checks, so orchestrators never restart on a slow store.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready. Ready means the store
// answers a ping; until then load balancers keep traffic away.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "storage unreachable")
		return
	}
	respondSuccess(w, map[string]string{"status": "ready"})
}
