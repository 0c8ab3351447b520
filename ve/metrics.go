// SPDX-License-Identifier: MIT

package ve

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Query outcomes used as the "outcome" label.
const (
	outcomeOK           = "ok"
	outcomeZeroEvidence = "zero_evidence"
	outcomeInconsistent = "inconsistent"
	outcomeInvalid      = "invalid"
	outcomeCanceled     = "canceled"
	outcomeError        = "error"
)

// Metrics holds the engine's prometheus collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	queries      *prometheus.CounterVec
	eliminations prometheus.Counter
	tableSize    prometheus.Histogram
	duration     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg registers nothing, which is convenient for tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvbayes",
			Subsystem: "ve",
			Name:      "queries_total",
			Help:      "Variable elimination queries by outcome.",
		}, []string{"outcome"}),
		eliminations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lvbayes",
			Subsystem: "ve",
			Name:      "eliminations_total",
			Help:      "Variables summed out across all queries.",
		}),
		tableSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lvbayes",
			Subsystem: "ve",
			Name:      "intermediate_table_size",
			Help:      "Entries in each factor produced by elimination.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lvbayes",
			Subsystem: "ve",
			Name:      "query_duration_seconds",
			Help:      "Wall time of a query.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.queries, m.eliminations, m.tableSize, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeElimination(tableSize int) {
	if m == nil {
		return
	}
	m.eliminations.Inc()
	m.tableSize.Observe(float64(tableSize))
}

func (m *Metrics) observeQuery(err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(outcome(err)).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// outcome maps an error to its label.
func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrZeroEvidenceProbability):
		return outcomeZeroEvidence
	case errors.Is(err, ErrInconsistentEliminationResult):
		return outcomeInconsistent
	case errors.Is(err, ErrInvalidOrdering), errors.Is(err, ErrUnknownVariable),
		errors.Is(err, ErrNilQuery), errors.Is(err, ErrConflictingEvidence):
		return outcomeInvalid
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	default:
		return outcomeError
	}
}
