// Package metrics exposes run telemetry as Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements the engine's telemetry contract on top of a private
// Prometheus registry, so concurrent runs and tests never collide on the
// default registry.
type Recorder struct {
	registry    *prometheus.Registry
	evaluations prometheus.Counter
	generations prometheus.Counter
	best        prometheus.Gauge
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "evoso_evaluations_total",
			Help: "Cumulative objective function evaluations.",
		}),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "evoso_generations_total",
			Help: "Completed generations.",
		}),
		best: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "evoso_best_objective",
			Help: "Best objective value observed so far.",
		}),
	}
	r.registry.MustRegister(r.evaluations, r.generations, r.best)
	return r
}

// Registry returns the recorder's registry for serving.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// AddEvaluations counts n objective evaluations.
func (r *Recorder) AddEvaluations(n int) {
	r.evaluations.Add(float64(n))
}

// IncGenerations counts one completed generation.
func (r *Recorder) IncGenerations() {
	r.generations.Inc()
}

// ObserveBest records the current best objective value.
func (r *Recorder) ObserveBest(v float64) {
	r.best.Set(v)
}
