// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts served requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "depthchart_http_requests_total",
		Help: "Total number of HTTP requests served.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "depthchart_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// SnapshotReloads counts successful snapshot reloads.
	SnapshotReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "depthchart_snapshot_reloads_total",
		Help: "Total number of successful snapshot reloads.",
	})

	// WebsocketClients tracks currently connected dashboard clients.
	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "depthchart_websocket_clients",
		Help: "Currently connected websocket clients.",
	})
)
