// Package telemetry captures metrics emitted by the dispatch path.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Dispatch results reported to Collector.IncDispatch.
const (
	ResultConnected   = "connected"
	ResultFallback    = "fallback"
	ResultUnsupported = "unsupported"
	ResultError       = "error"
)

// Collector receives events from the connection dispatch path.
//
// Implementations must be inexpensive to call because the hooks run
// inline with every OpenConnection call.
type Collector interface {
	IncDispatch(scheme, result string)
	ObserveOpenDuration(scheme string, seconds float64)
}

type noopCollector struct{}

// Noop returns a collector that discards all events.
func Noop() Collector {
	return noopCollector{}
}

func (noopCollector) IncDispatch(string, string)          {}
func (noopCollector) ObserveOpenDuration(string, float64) {}

// PrometheusCollector exposes dispatch counters via Prometheus.
type PrometheusCollector struct {
	dispatches   *prometheus.CounterVec
	openDuration *prometheus.HistogramVec
}

// NewPrometheusCollector registers the dispatch metrics with reg and
// returns a collector feeding them. A nil reg means the default
// registerer. Registering twice against the same registerer reuses the
// existing metrics.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	dispatches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exturl_dispatch_total",
		Help: "Number of connection dispatches per scheme and result.",
	}, []string{"scheme", "result"})
	if err := reg.Register(dispatches); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			dispatches = already.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	openDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "exturl_open_duration_seconds",
		Help:    "Time spent opening a connection, including the fallback step.",
		Buckets: prometheus.DefBuckets,
	}, []string{"scheme"})
	if err := reg.Register(openDuration); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			openDuration = already.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PrometheusCollector{
		dispatches:   dispatches,
		openDuration: openDuration,
	}, nil
}

func (c *PrometheusCollector) IncDispatch(scheme, result string) {
	c.dispatches.WithLabelValues(scheme, result).Inc()
}

func (c *PrometheusCollector) ObserveOpenDuration(scheme string, seconds float64) {
	c.openDuration.WithLabelValues(scheme).Observe(seconds)
}

// DispatchCounter returns the counter behind IncDispatch for the given
// labels. It is intended for tests and the status endpoint.
func (c *PrometheusCollector) DispatchCounter(scheme, result string) prometheus.Counter {
	return c.dispatches.WithLabelValues(scheme, result)
}
