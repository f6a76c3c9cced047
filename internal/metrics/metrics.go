// Package metrics defines the Prometheus collectors of the admin gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the admin gateway collectors.
type Metrics struct {
	// Requests counts handled requests by route, method and status code.
	Requests *prometheus.CounterVec

	// RequestDuration observes handler latency by route.
	RequestDuration *prometheus.HistogramVec

	// BlockingChanges counts accepted writes to the blocking flag by target state.
	BlockingChanges *prometheus.CounterVec

	// BlockingEnabled is 1 while blocking is enabled, as last seen by the gateway.
	BlockingEnabled prometheus.Gauge
}

// New registers the collectors on reg. A nil reg uses a private registry
// that is never exposed.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "blockproxy_admin_requests_total",
			Help: "Total number of admin gateway requests.",
		}, []string{"route", "method", "status"}),

		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blockproxy_admin_request_duration_seconds",
			Help:    "Histogram of admin gateway request latencies.",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"route"}),

		BlockingChanges: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "blockproxy_blocking_changes_total",
			Help: "Accepted writes to the blocking flag.",
		}, []string{"state"}),

		BlockingEnabled: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "blockproxy_blocking_enabled",
			Help: "Current blocking flag (1=Enabled, 0=Disabled).",
		}),
	}
}

// ObserveBlocking updates the gauge to the given flag.
func (m *Metrics) ObserveBlocking(enabled bool) {
	if m == nil {
		return
	}
	if enabled {
		m.BlockingEnabled.Set(1)
	} else {
		m.BlockingEnabled.Set(0)
	}
}
