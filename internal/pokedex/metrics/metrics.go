package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for navigation.
type Metrics struct {
	// Records emitted by transition ("start", "forward", "backward", "search") and status
	RecordsEmitted *prometheus.CounterVec

	// End-to-end latency of one transition, fetches and composition included
	TransitionLatency *prometheus.HistogramVec
}

// New registers the navigation metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the navigation metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_records_emitted_total",
			Help: "Total display records emitted by transition and status",
		}, []string{"transition", "status"}),

		TransitionLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pokedex_transition_duration_seconds",
			Help:    "Duration of a navigation transition including catalog fetches",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"transition"}),
	}
}

// ObserveTransition records one emitted record and how long it took.
func (m *Metrics) ObserveTransition(transition, status string, d time.Duration) {
	if m != nil {
		m.RecordsEmitted.WithLabelValues(transition, status).Inc()
		m.TransitionLatency.WithLabelValues(transition).Observe(d.Seconds())
	}
}
