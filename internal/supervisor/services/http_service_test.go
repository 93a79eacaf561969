// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockServer stands in for *http.Server.
type mockServer struct {
	serveErr    error
	shutdownErr error
	release     chan struct{}
	shutdowns   chan struct{}
}

func newMockServer() *mockServer {
	return &mockServer{
		release:   make(chan struct{}),
		shutdowns: make(chan struct{}, 1),
	}
}

func (m *mockServer) ListenAndServe() error {
	<-m.release
	return m.serveErr
}

func (m *mockServer) Shutdown(context.Context) error {
	m.shutdowns <- struct{}{}
	close(m.release)
	return m.shutdownErr
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	t.Parallel()

	server := newMockServer()
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	select {
	case <-server.shutdowns:
	default:
		t.Error("Shutdown was never called")
	}
}

func TestHTTPServerServiceCrashPropagates(t *testing.T) {
	t.Parallel()

	server := newMockServer()
	server.serveErr = errors.New("listen tcp: address in use")
	close(server.release)

	svc := NewHTTPServerService(server, time.Second)
	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, server.serveErr) {
		t.Errorf("Serve = %v, want wrapped listen error", err)
	}
}

func TestHTTPServerServiceString(t *testing.T) {
	t.Parallel()

	if got := NewHTTPServerService(newMockServer(), 0).String(); got != "http-server" {
		t.Errorf("String() = %q", got)
	}
}

type fakeHub struct {
	ran chan struct{}
}

func (f *fakeHub) RunWithContext(ctx context.Context) error {
	close(f.ran)
	<-ctx.Done()
	return ctx.Err()
}

func TestRelayHubServiceDelegates(t *testing.T) {
	t.Parallel()

	hub := &fakeHub{ran: make(chan struct{})}
	svc := NewRelayHubService(hub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	select {
	case <-hub.ran:
	case <-time.After(time.Second):
		t.Fatal("hub was never run")
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	if svc.String() != "relay-hub" {
		t.Errorf("String() = %q", svc.String())
	}
}
