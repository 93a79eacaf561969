// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpulse_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridpulse_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gridpulse_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Telemetry store metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridpulse_store_query_duration_seconds",
			Help:    "Duration of telemetry store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpulse_store_query_errors_total",
			Help: "Total number of telemetry store query errors",
		},
		[]string{"operation", "collection"},
	)

	// Relay metrics
	RelayClientsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gridpulse_relay_clients_active",
			Help: "Current number of connected WebSocket clients",
		},
	)

	RelaySubscriptionsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gridpulse_relay_subscriptions_active",
			Help: "Current number of active subscriptions by mode",
		},
		[]string{"mode"},
	)

	RelayTicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpulse_relay_ticks_total",
			Help: "Total number of subscription polling ticks",
		},
		[]string{"mode", "status"},
	)

	// Catalog cache metrics
	CatalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gridpulse_catalog_cache_hits_total",
			Help: "Total number of catalog cache hits",
		},
	)

	CatalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gridpulse_catalog_cache_misses_total",
			Help: "Total number of catalog cache misses",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// ObserveStoreQuery records one store query's duration and outcome.
func ObserveStoreQuery(operation, collection string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if err != nil {
		StoreQueryErrors.WithLabelValues(operation, collection).Inc()
	}
}

// RecordRelayTick records one subscription polling tick.
func RecordRelayTick(mode string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	RelayTicksTotal.WithLabelValues(mode, status).Inc()
}
