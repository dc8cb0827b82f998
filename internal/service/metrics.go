package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus counters.
type Metrics struct {
	Lookups         prometheus.Counter
	LookupFailures  prometheus.Counter
	Classifications prometheus.Counter
	Occurrences     prometheus.Counter
}

// NewMetrics builds and registers the taxonomy counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxonomy_lookups_total",
			Help: "Total number of error code lookups.",
		}),
		LookupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxonomy_lookup_failures_total",
			Help: "Total number of lookups for unregistered codes.",
		}),
		Classifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxonomy_classifications_total",
			Help: "Total number of fault classifications.",
		}),
		Occurrences: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxonomy_occurrences_recorded_total",
			Help: "Total number of error occurrences persisted.",
		}),
	}
	reg.MustRegister(m.Lookups, m.LookupFailures, m.Classifications, m.Occurrences)
	return m
}
