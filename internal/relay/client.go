// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package relay

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/gridpulse/gridpulse/internal/config"
	"github.com/gridpulse/gridpulse/internal/logging"
	"github.com/gridpulse/gridpulse/internal/models"
	"github.com/gridpulse/gridpulse/internal/query"
)

// Queries is the slice of the query layer a subscription loop runs.
type Queries interface {
	LatestValue(ctx context.Context, terminalID int, key models.MeasurandKey) (*query.LiveValue, error)
	RecentWindow(ctx context.Context, terminalID int, key models.MeasurandKey) ([]query.SeriesPoint, error)
}

// clientIDCounter generates unique, monotonically increasing client
// ids so hub operations can order clients deterministically.
var clientIDCounter atomic.Uint64

// Client is the middleman between one websocket connection and its
// subscription loop.
type Client struct {
	id      uint64
	hub     *Hub
	conn    *websocket.Conn
	queries Queries
	cfg     config.RelayConfig
	send    chan Frame

	// ctx outlives the upgrade request and is canceled when the
	// connection goes away, taking any subscription loop with it.
	ctx    context.Context
	cancel context.CancelFunc

	mu  sync.Mutex
	sub *subscription
}

// NewClient creates a Client for an upgraded connection.
func NewClient(hub *Hub, conn *websocket.Conn, queries Queries, cfg config.RelayConfig) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		id:      clientIDCounter.Add(1),
		hub:     hub,
		conn:    conn,
		queries: queries,
		cfg:     cfg,
		send:    make(chan Frame, 64),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// ID returns the client's unique identifier.
func (c *Client) ID() uint64 {
	return c.id
}

// Start begins reading and writing for the client.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

// deliver queues a frame without blocking the subscription loop. A full
// send buffer means the client is not keeping up; the frame is dropped
// and the next tick supersedes it anyway.
func (c *Client) deliver(frame Frame) {
	select {
	case c.send <- frame:
	default:
		logging.Warn().Uint64("client_id", c.id).Msg("relay send buffer full, dropping frame")
	}
}

// teardown is the hub-side close: cancel the subscription loop, wait
// for it to drain, and close the connection. Closing the connection
// unblocks readPump, whose teardown owns closing the send channel.
func (c *Client) teardown() {
	c.cancel()
	c.dropSubscription()
	_ = c.conn.Close()
}

// readPump parses subscription frames from the connection. It owns the
// client's lifetime: when it returns the subscription loop is canceled
// and drained, the send channel is closed (it is the sole closer), the
// hub forgets the client, and the connection is closed.
func (c *Client) readPump() {
	defer func() {
		c.cancel()
		c.dropSubscription()
		close(c.send)
		select {
		case c.hub.Unregister <- c:
		case <-c.hub.stoppedChan():
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait)); err != nil {
		logging.Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Error().Err(err).Uint64("client_id", c.id).Msg("unexpected websocket close")
			}
			return
		}

		req, err := decodeSubscribeRequest(payload)
		if err != nil {
			c.deliver(ErrorFrame(err.Error()))
			continue
		}
		if err := req.Validate(); err != nil {
			c.deliver(ErrorFrame(err.Error()))
			continue
		}

		c.subscribe(req)
	}
}

// writePump serializes frames onto the connection and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	pingPeriod := (c.cfg.PongWait * 9) / 10
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if !ok {
				// readPump closed the channel; best-effort close frame.
				_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait)); err != nil {
				logging.Error().Err(err).Msg("failed to set write deadline")
				return
			}

			payload, err := json.Marshal(frame)
			if err != nil {
				logging.Error().Err(err).Msg("failed to marshal relay frame")
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logging.Error().Err(err).Uint64("client_id", c.id).Msg("failed to write relay frame")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait)); err != nil {
				logging.Error().Err(err).Msg("failed to set write deadline for ping")
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
