package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the registry's Prometheus collectors.
type Metrics struct {
	UnitTransitions    *prometheus.CounterVec
	TransitionConflict prometheus.Counter
	SweepRuns          prometheus.Counter
	SweepExamined      prometheus.Counter
	SweepExpired       prometheus.Counter
	ArtifactPuts       prometheus.Counter
}

// New registers the collectors on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the collectors on a specific registerer (used by tests to
// avoid duplicate registration).
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UnitTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodlink_unit_transitions_total",
			Help: "Total number of applied blood unit status transitions",
		}, []string{"to"}),
		TransitionConflict: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_unit_transition_conflicts_total",
			Help: "Total number of status transitions rejected by the compare-and-swap guard",
		}),
		SweepRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_sweep_runs_total",
			Help: "Total number of expiry sweep batches executed",
		}),
		SweepExamined: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_sweep_examined_total",
			Help: "Total number of units examined by the expiry sweeper",
		}),
		SweepExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_sweep_expired_total",
			Help: "Total number of units expired by the sweeper",
		}),
		ArtifactPuts: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_artifact_puts_total",
			Help: "Total number of test artifact store writes (including dedup hits)",
		}),
	}
}

// RecordTransition counts an applied transition by target status.
func (m *Metrics) RecordTransition(to string) {
	m.UnitTransitions.WithLabelValues(to).Inc()
}
