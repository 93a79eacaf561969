// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package services

import (
	"context"
)

// ContextHub matches *relay.Hub's RunWithContext method without
// importing the relay package.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// RelayHubService wraps the relay hub as a supervised service. The hub
// already follows the Serve(ctx) pattern, so this only adds a name.
type RelayHubService struct {
	hub  ContextHub
	name string
}

// NewRelayHubService creates the wrapper.
func NewRelayHubService(hub ContextHub) *RelayHubService {
	return &RelayHubService{
		hub:  hub,
		name: "relay-hub",
	}
}

// Serve implements suture.Service.
func (s *RelayHubService) Serve(ctx context.Context) error {
	return s.hub.RunWithContext(ctx)
}

// String identifies the service in suture's event log.
func (s *RelayHubService) String() string {
	return s.name
}
