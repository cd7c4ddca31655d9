// Package prom exports gather run metrics to Prometheus.
package prom

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fxsml/gather"
)

// Collector records finished pipeline runs as Prometheus metrics.
type Collector struct {
	runsTotal   *prometheus.CounterVec
	elementsIn  prometheus.Counter
	elementsOut prometheus.Counter
	runDuration prometheus.Histogram
}

// NewCollector registers the gather run metrics with reg and returns a
// collector whose Collect method can be attached to an executor with
// gather.WithMetricsCollector or gather.Instrument.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gather_runs_total",
				Help: "Total number of finished pipeline runs by outcome.",
			},
			[]string{"outcome"},
		),
		elementsIn: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "gather_elements_in_total",
				Help: "Total number of elements handed to integrators.",
			},
		),
		elementsOut: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "gather_elements_out_total",
				Help: "Total number of values accepted downstream.",
			},
		),
		runDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gather_run_duration_seconds",
				Help:    "Duration of pipeline runs.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// Collect records one finished run.
func (c *Collector) Collect(m *gather.RunMetrics) {
	outcome := "success"
	switch {
	case m.Err == nil:
	case errors.Is(m.Err, gather.ErrCancel):
		outcome = "cancel"
	default:
		outcome = "failure"
	}
	c.runsTotal.WithLabelValues(outcome).Inc()
	c.elementsIn.Add(float64(m.In))
	c.elementsOut.Add(float64(m.Out))
	c.runDuration.Observe(m.Duration.Seconds())
}
