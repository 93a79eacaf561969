// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package relay

import (
	"context"
	"sort"
	"sync"

	"github.com/gridpulse/gridpulse/internal/logging"
	"github.com/gridpulse/gridpulse/internal/metrics"
)

// ShutdownReason identifies why the hub is shutting down.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled is the normal graceful shutdown
	// path (SIGTERM through the supervisor).
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline indicates the shutdown context
	// deadline was exceeded.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Hub maintains the set of active relay clients. There is no broadcast
// path: every frame a client receives comes from its own subscription
// loop. The hub exists for lifecycle accounting and graceful shutdown.
type Hub struct {
	clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex

	// stopped is closed when the hub exits its run loop so client
	// teardown never blocks on an Unregister send with no receiver.
	// Re-armed on the next RunWithContext for supervised restarts.
	stopped chan struct{}
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		stopped:    make(chan struct{}),
	}
}

// RunWithContext runs the hub until the context is canceled, then
// closes every connected client and returns ctx.Err(). Designed for
// suture supervision.
//
// DETERMINISM: context cancellation is checked before lifecycle events
// so shutdown always wins when both are ready.
func (h *Hub) RunWithContext(ctx context.Context) error {
	h.mu.Lock()
	select {
	case <-h.stopped:
		h.stopped = make(chan struct{})
	default:
	}
	h.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()

		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			metrics.RelayClientsActive.Set(float64(total))
			logging.Info().Uint64("client_id", client.ID()).Int("total_clients", total).
				Msg("relay client connected")

		case client := <-h.Unregister:
			h.mu.Lock()
			delete(h.clients, client)
			total := len(h.clients)
			h.mu.Unlock()
			metrics.RelayClientsActive.Set(float64(total))
			logging.Info().Uint64("client_id", client.ID()).Int("total_clients", total).
				Msg("relay client disconnected")
		}
	}
}

// shutdown closes all clients and logs the reason. Context errors here
// are expected behavior, not failures.
func (h *Hub) shutdown(ctx context.Context) {
	closed := h.closeAllClients()

	h.mu.Lock()
	close(h.stopped)
	h.mu.Unlock()

	reason := ShutdownReasonContextCanceled
	if ctx.Err() == context.DeadlineExceeded {
		reason = ShutdownReasonContextDeadline
	}

	logging.Info().
		Str("component", "relay-hub").
		Str("reason", string(reason)).
		Int("clients_closed", closed).
		Msg("relay hub stopped")
}

// closeAllClients tears down every client in id order and returns how
// many were open. Each client's subscription loop is canceled and
// drained before its connection is closed; the send channel itself is
// closed only by readPump's teardown, never from here, so an in-flight
// tick can still deliver its final frame safely.
func (h *Hub) closeAllClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})

	for _, client := range clients {
		client.teardown()
		delete(h.clients, client)
	}
	metrics.RelayClientsActive.Set(0)
	return len(clients)
}

// stoppedChan returns the channel closed when the hub stops.
func (h *Hub) stoppedChan() <-chan struct{} {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.stopped
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
