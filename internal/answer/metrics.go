// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts pipeline outcomes and how long each answer took.
// A nil *Metrics discards observations.
type Metrics struct {
	answers  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the pipeline collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wikibot",
			Name:      "answers_total",
			Help:      "Answers produced, by terminal outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wikibot",
			Name:      "answer_duration_seconds",
			Help:      "Time to produce an answer, including both Wikipedia lookups.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.answers, m.duration)
	return m
}

// Observe records one answer.
func (m *Metrics) Observe(outcome Outcome, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.answers.WithLabelValues(string(outcome)).Inc()
	m.duration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}
