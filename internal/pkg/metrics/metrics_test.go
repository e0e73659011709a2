package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGenerationMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewGenerationMetrics(reg)

	m.ObserveRequest()
	m.ObserveRequest()
	m.ObserveTransition("pending", "generating")
	m.ObserveTransition("", "pending")
	m.ObserveWorkerOutcome(OutcomeSucceeded)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.transitions.WithLabelValues("pending", "generating")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.transitions.WithLabelValues("none", "pending")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.workerOutcomes.WithLabelValues(OutcomeSucceeded)))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.workerOutcomes.WithLabelValues(OutcomeFailed)))
}

func TestGenerationMetrics_NilIsNoop(t *testing.T) {
	var m *GenerationMetrics

	assert.NotPanics(t, func() {
		m.ObserveRequest()
		m.ObserveTransition("pending", "failed")
		m.ObserveWorkerOutcome(OutcomeFailed)
		m.ObserveAuditedEvent("GENERATION_REQUESTED")
	})
}
