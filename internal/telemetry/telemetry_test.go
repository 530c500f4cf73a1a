package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exturl/exturl/internal/telemetry"
)

func TestNoop(t *testing.T) {
	c := telemetry.Noop()

	// Noop must accept any event without side effects.
	c.IncDispatch("jdbc", telemetry.ResultConnected)
	c.ObserveOpenDuration("jdbc", 0.5)
}

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()

	c, err := telemetry.NewPrometheusCollector(reg)
	require.NoError(t, err)

	c.IncDispatch("jdbc", telemetry.ResultConnected)
	c.IncDispatch("jdbc", telemetry.ResultConnected)
	c.IncDispatch("jdbc", telemetry.ResultFallback)
	c.ObserveOpenDuration("jdbc", 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.DispatchCounter("jdbc", telemetry.ResultConnected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DispatchCounter("jdbc", telemetry.ResultFallback)))
}

func TestPrometheusCollector_registerTwice(t *testing.T) {
	reg := prometheus.NewRegistry()

	a, err := telemetry.NewPrometheusCollector(reg)
	require.NoError(t, err)

	b, err := telemetry.NewPrometheusCollector(reg)
	require.NoError(t, err)

	a.IncDispatch("jdbc", telemetry.ResultConnected)
	b.IncDispatch("jdbc", telemetry.ResultConnected)

	assert.Equal(t, 2.0, testutil.ToFloat64(b.DispatchCounter("jdbc", telemetry.ResultConnected)))
}
