// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for the GridPulse server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Mongo    MongoConfig    `koanf:"mongo"`
	Relay    RelayConfig    `koanf:"relay"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MongoConfig holds the telemetry store connection settings. The
// collection names are configurable because staging environments share a
// cluster and namespace collections per deployment.
type MongoConfig struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	QueryTimeout   time.Duration `koanf:"query_timeout"`

	LiveCollection    string `koanf:"live_collection"`
	RecentCollection  string `koanf:"recent_collection"`
	ArchiveCollection string `koanf:"archive_collection"`
	PlantsCollection  string `koanf:"plants_collection"`
}

// RelayConfig holds WebSocket relay settings. TickPeriod is the fixed
// polling period for every subscription; clients cannot negotiate it.
type RelayConfig struct {
	TickPeriod       time.Duration `koanf:"tick_period"`
	WriteWait        time.Duration `koanf:"write_wait"`
	PongWait         time.Duration `koanf:"pong_wait"`
	HandshakeTimeout time.Duration `koanf:"handshake_timeout"`
	MaxMessageSize   int64         `koanf:"max_message_size"`
}

// APIConfig holds REST surface settings.
type APIConfig struct {
	// RecentWindowSize caps how many samples the last-900 endpoint and
	// history subscriptions return per request.
	RecentWindowSize int `koanf:"recent_window_size"`

	// RateLimitReqs is the per-IP request limit per minute for data
	// endpoints; health endpoints get a more permissive limit.
	RateLimitReqs       int `koanf:"rate_limit_reqs"`
	RateLimitHealthReqs int `koanf:"rate_limit_health_reqs"`
}

// SecurityConfig holds the CORS / origin policy for the dashboard SPA.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}
	if c.Mongo.URI == "" {
		problems = append(problems, "mongo.uri is required (set MONGO_URI)")
	}
	if c.Mongo.Database == "" {
		problems = append(problems, "mongo.database is required")
	}
	if c.Relay.TickPeriod < 100*time.Millisecond {
		problems = append(problems, fmt.Sprintf("relay.tick_period %s below 100ms floor", c.Relay.TickPeriod))
	}
	if c.Relay.PongWait <= c.Relay.WriteWait {
		problems = append(problems, "relay.pong_wait must exceed relay.write_wait")
	}
	if c.API.RecentWindowSize < 1 {
		problems = append(problems, "api.recent_window_size must be positive")
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q must be json or console", c.Logging.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
