package metrics_test

import (
	"testing"

	"github.com/jroosing/blockproxy/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.Requests.WithLabelValues("/api/blocking", "GET", "200").Inc()
	m.RequestDuration.WithLabelValues("/api/blocking").Observe(0.002)
	m.BlockingChanges.WithLabelValues("Disabled").Inc()
	m.ObserveBlocking(true)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"blockproxy_admin_requests_total",
		"blockproxy_admin_request_duration_seconds",
		"blockproxy_blocking_changes_total",
		"blockproxy_blocking_enabled",
	}, names)
}

func TestNew_NilRegistry(t *testing.T) {
	assert.NotPanics(t, func() {
		m := metrics.New(nil)
		m.ObserveBlocking(false)
	})
}

func TestObserveBlocking(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveBlocking(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BlockingEnabled))

	m.ObserveBlocking(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.BlockingEnabled))

	var nilMetrics *metrics.Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveBlocking(true) })
}
