// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package relay

import (
	"context"
	"errors"
	"time"

	"github.com/gridpulse/gridpulse/internal/logging"
	"github.com/gridpulse/gridpulse/internal/metrics"
	"github.com/gridpulse/gridpulse/internal/models"
	"github.com/gridpulse/gridpulse/internal/query"
)

// subscription is one active polling loop for one client.
type subscription struct {
	mode       string
	terminalID int
	key        models.MeasurandKey
	cancel     context.CancelFunc
	done       chan struct{}
}

// subscribe atomically replaces the client's active subscription with a
// new one. The old loop is canceled and fully drained before the new
// loop starts, so a client never receives frames from two loops.
func (c *Client) subscribe(req *SubscribeRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sub != nil {
		c.sub.cancel()
		<-c.sub.done
		metrics.RelaySubscriptionsActive.WithLabelValues(c.sub.mode).Dec()
	}

	ctx, cancel := context.WithCancel(c.ctx)
	sub := &subscription{
		mode:       req.Type,
		terminalID: int(req.TerminalID),
		key:        req.MeasurandID,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	c.sub = sub
	metrics.RelaySubscriptionsActive.WithLabelValues(sub.mode).Inc()

	logging.Debug().
		Uint64("client_id", c.id).
		Str("mode", sub.mode).
		Int("terminal_id", sub.terminalID).
		Str("measurand_id", sub.key.String()).
		Msg("relay subscription started")

	go c.runSubscription(ctx, sub)
}

// dropSubscription tears down the active subscription, if any. Called
// when the connection goes away.
func (c *Client) dropSubscription() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sub == nil {
		return
	}
	c.sub.cancel()
	<-c.sub.done
	metrics.RelaySubscriptionsActive.WithLabelValues(c.sub.mode).Dec()
	c.sub = nil
}

// runSubscription polls the query layer until the subscription is
// canceled. The first tick fires immediately so a subscriber sees data
// within one tick period; after that the timer is re-armed only once
// the previous tick has finished, so ticks never overlap even when a
// query runs longer than the period.
func (c *Client) runSubscription(ctx context.Context, sub *subscription) {
	defer close(sub.done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		c.tick(ctx, sub)
		timer.Reset(c.cfg.TickPeriod)
	}
}

// tick runs one poll and delivers exactly one frame. Query failures,
// including missing data on a liveValue subscription, produce an error
// frame and leave the loop running.
func (c *Client) tick(ctx context.Context, sub *subscription) {
	switch sub.mode {
	case ModeLiveValue:
		value, err := c.queries.LatestValue(ctx, sub.terminalID, sub.key)
		metrics.RecordRelayTick(sub.mode, err)
		if err != nil {
			c.deliverTickError(sub, err)
			return
		}
		c.deliver(SuccessFrame(sub.mode, value))

	case ModeHistory:
		points, err := c.queries.RecentWindow(ctx, sub.terminalID, sub.key)
		metrics.RecordRelayTick(sub.mode, err)
		if err != nil {
			c.deliverTickError(sub, err)
			return
		}
		if points == nil {
			points = []query.SeriesPoint{}
		}
		c.deliver(HistoryFrame(sub.mode, points, len(points)))
	}
}

// deliverTickError translates a query error into a wire message
// without leaking storage internals to the client.
func (c *Client) deliverTickError(sub *subscription, err error) {
	if ctxDone(err) {
		return
	}

	msg := "internal error"
	switch {
	case errors.Is(err, query.ErrNotFound):
		msg = "no data for the requested terminal and measurand"
	case errors.Is(err, query.ErrInvalidInput):
		msg = "invalid subscription parameters"
	default:
		logging.Error().Err(err).
			Uint64("client_id", c.id).
			Str("mode", sub.mode).
			Int("terminal_id", sub.terminalID).
			Msg("relay tick failed")
	}
	c.deliver(ErrorFrame(msg))
}

// ctxDone reports whether err is just the subscription winding down.
func ctxDone(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
