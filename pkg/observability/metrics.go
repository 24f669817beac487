package observability

import (
	"context"

	"github.com/aretw0/smol/pkg/command"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels used by the invocation counter.
const (
	OutcomeOK        = "ok"
	OutcomeFalse     = "false"
	OutcomeAborted   = "aborted"
	OutcomeRecovered = "recovered"
	OutcomeError     = "error"
)

// Metrics holds prometheus collectors fed by invoker lifecycle hooks.
type Metrics struct {
	Invocations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smol_command_invocations_total",
				Help: "Total number of command invocations by outcome",
			},
			[]string{"command", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "smol_command_duration_seconds",
				Help:    "Duration of command invocations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Invocations, m.Duration)
	}
	return m
}

// Hooks returns lifecycle hooks that record every finished invocation.
func (m *Metrics) Hooks() command.LifecycleHooks {
	return command.LifecycleHooks{
		OnCommandFinish: func(_ context.Context, e *command.CommandEvent) {
			m.Invocations.WithLabelValues(e.Name, Outcome(e)).Inc()
			m.Duration.WithLabelValues(e.Name).Observe(e.Duration.Seconds())
		},
	}
}

// Outcome classifies a finished invocation.
func Outcome(e *command.CommandEvent) string {
	switch {
	case e.Err != nil:
		return OutcomeError
	case e.Aborted:
		return OutcomeAborted
	case e.Recovered:
		return OutcomeRecovered
	}
	if b, ok := e.Result.(bool); ok && !b {
		return OutcomeFalse
	}
	return OutcomeOK
}
