// Package metrics exposes Prometheus collectors for the sequencer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors updated by the engine.
type Metrics struct {
	Ticks              prometheus.Counter
	Triggers           *prometheus.CounterVec
	Settles            *prometheus.CounterVec
	ValidationFailures prometheus.Counter
	AdvanceDuration    prometheus.Histogram
	NodesSettled       prometheus.Gauge
}

// New creates the collectors and registers them on reg.
// A nil reg leaves them unregistered, which is handy in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stagger_ticks_total",
			Help: "Total number of sequencer ticks.",
		}),
		Triggers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stagger_node_triggers_total",
			Help: "Number of times a node started transitioning.",
		}, []string{"node"}),
		Settles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stagger_node_settles_total",
			Help: "Number of times a node settled at full progress.",
		}, []string{"node"}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stagger_validation_failures_total",
			Help: "Number of ticks rejected because the snapshot was malformed.",
		}),
		AdvanceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stagger_advance_duration_seconds",
			Help:    "Time spent computing one tick.",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .016},
		}),
		NodesSettled: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stagger_nodes_settled",
			Help: "Number of settled nodes in the latest snapshot.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.Ticks,
			m.Triggers,
			m.Settles,
			m.ValidationFailures,
			m.AdvanceDuration,
			m.NodesSettled,
		)
	}

	return m
}

// ObserveTick records one successful tick.
func (m *Metrics) ObserveTick(elapsed time.Duration, settled int) {
	m.Ticks.Inc()
	m.AdvanceDuration.Observe(elapsed.Seconds())
	m.NodesSettled.Set(float64(settled))
}
