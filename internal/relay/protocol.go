// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package relay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/gridpulse/gridpulse/internal/models"
)

// Subscription modes accepted on the wire.
const (
	ModeLiveValue = "liveValue"
	ModeHistory   = "history"
)

// Frame statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// TerminalID accepts a JSON number or a numeric string. Dashboard
// clients send both forms.
type TerminalID int

// UnmarshalJSON implements json.Unmarshaler.
func (t *TerminalID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*t = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("terminalId %q is not numeric", s)
	}
	*t = TerminalID(n)
	return nil
}

// SubscribeRequest is the single client-to-server frame type.
type SubscribeRequest struct {
	Type        string              `json:"type"`
	TerminalID  TerminalID          `json:"terminalId"`
	MeasurandID models.MeasurandKey `json:"measurandId"`
}

// Validate checks a decoded frame before it may start a subscription.
func (r *SubscribeRequest) Validate() error {
	switch r.Type {
	case ModeLiveValue, ModeHistory:
	default:
		return fmt.Errorf("unknown subscription type %q", r.Type)
	}
	if r.TerminalID <= 0 {
		return errors.New("terminalId is required and must be positive")
	}
	if r.Type == ModeLiveValue && r.MeasurandID.IsZero() {
		return errors.New("measurandId is required for liveValue subscriptions")
	}
	return nil
}

// Frame is the single server-to-client frame shape, shared by success
// and error responses.
type Frame struct {
	Status  string      `json:"status"`
	Type    string      `json:"type,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
}

// SuccessFrame builds a success frame for one subscription tick.
func SuccessFrame(mode string, data interface{}) Frame {
	return Frame{Status: StatusSuccess, Type: mode, Data: data}
}

// HistoryFrame builds a success frame carrying a sample count.
func HistoryFrame(mode string, data interface{}, count int) Frame {
	return Frame{Status: StatusSuccess, Type: mode, Data: data, Count: &count}
}

// ErrorFrame builds an error frame.
func ErrorFrame(message string) Frame {
	return Frame{Status: StatusError, Message: message}
}

// decodeSubscribeRequest parses a raw text frame.
func decodeSubscribeRequest(payload []byte) (*SubscribeRequest, error) {
	var req SubscribeRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("malformed subscription frame: %w", err)
	}
	return &req, nil
}
