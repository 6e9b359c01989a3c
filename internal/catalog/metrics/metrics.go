package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for catalog fetches.
type Metrics struct {
	// Fetch latency by resource: "entity", "species", "image"
	FetchLatency *prometheus.HistogramVec

	// Fetch outcomes by resource and result ("ok" or an error category)
	FetchOutcome *prometheus.CounterVec

	// Cache lookups by resource and result ("hit", "miss", "error")
	CacheLookup *prometheus.CounterVec

	// 1 while the catalog circuit breaker is open
	BreakerOpen prometheus.Gauge
}

// New registers the catalog metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the catalog metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pokedex_catalog_fetch_duration_seconds",
			Help:    "Duration of catalog fetches by resource",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"resource"}),

		FetchOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_catalog_fetch_total",
			Help: "Total catalog fetches by resource and outcome",
		}, []string{"resource", "outcome"}),

		CacheLookup: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_catalog_cache_lookups_total",
			Help: "Total catalog cache lookups by resource and result",
		}, []string{"resource", "result"}),

		BreakerOpen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pokedex_catalog_breaker_open",
			Help: "Whether the catalog circuit breaker is open (1) or closed (0)",
		}),
	}
}

// ObserveFetch records the latency and outcome of one fetch.
func (m *Metrics) ObserveFetch(resource, outcome string, d time.Duration) {
	if m != nil {
		m.FetchLatency.WithLabelValues(resource).Observe(d.Seconds())
		m.FetchOutcome.WithLabelValues(resource, outcome).Inc()
	}
}

// IncrementCacheLookup records a cache hit, miss or error.
func (m *Metrics) IncrementCacheLookup(resource, result string) {
	if m != nil {
		m.CacheLookup.WithLabelValues(resource, result).Inc()
	}
}

// SetBreakerOpen mirrors the breaker state.
func (m *Metrics) SetBreakerOpen(open bool) {
	if m != nil {
		if open {
			m.BreakerOpen.Set(1)
			return
		}
		m.BreakerOpen.Set(0)
	}
}
