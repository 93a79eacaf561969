// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package api

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/gridpulse/gridpulse/internal/logging"
	"github.com/gridpulse/gridpulse/internal/relay"
)

// newUpgrader builds the websocket upgrader with the configured origin
// policy. Requests without an Origin header (non-browser clients) are
// allowed; browser origins must match the CORS allow-list.
func (h *Handler) newUpgrader() *websocket.Upgrader {
	allowed := h.config.Security.CORSOrigins
	return &websocket.Upgrader{
		HandshakeTimeout: h.config.Relay.HandshakeTimeout,
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, o := range allowed {
				if o == "*" || o == origin {
					return true
				}
			}
			return false
		},
	}
}

// WebSocket handles GET /api/v1/ws: upgrade the connection and hand it
// to the relay hub. The subscription protocol takes over from there.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.newUpgrader().Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		logging.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}

	client := relay.NewClient(h.hub, conn, h.queries, h.config.Relay)
	h.hub.Register <- client
	client.Start()
}
