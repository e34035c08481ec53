package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/cambium/pkg/domain"
)

// Metrics holds the executor's Prometheus collectors.
type Metrics struct {
	actions   *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	commits   prometheus.Counter
	rollbacks prometheus.Counter
}

// NewMetrics creates and registers the collectors. Pass a private
// registry in tests; prometheus.DefaultRegisterer otherwise.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cambium_actions_total",
				Help: "Total number of action invocations",
			},
			[]string{"action", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "cambium_action_duration_seconds",
				Help: "Duration of action handles",
			},
			[]string{"action"},
		),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cambium_tx_commits_total",
			Help: "Total number of physical transaction commits",
		}),
		rollbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cambium_tx_rollbacks_total",
			Help: "Total number of physical transaction rollbacks",
		}),
	}
	reg.MustRegister(m.actions, m.duration, m.commits, m.rollbacks)
	return m
}

// Hooks returns the lifecycle hooks feeding these collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnActionEnd: func(ctx context.Context, e *domain.ActionEvent) {
			m.actions.WithLabelValues(e.Action, outcome(e.Err)).Inc()
			m.duration.WithLabelValues(e.Action).Observe(e.Duration.Seconds())
		},
		OnCommit: func(ctx context.Context, e *domain.ScopeEvent) {
			m.commits.Inc()
		},
		OnRollback: func(ctx context.Context, e *domain.ScopeEvent) {
			m.rollbacks.Inc()
		},
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case domain.IsDomain(err):
		return "domain_error"
	case domain.IsInfra(err):
		return "infra_error"
	default:
		return "error"
	}
}
