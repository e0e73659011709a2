package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "brandkit"

const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
)

// GenerationMetrics tracks the generation lifecycle. A nil *GenerationMetrics
// is valid and records nothing.
type GenerationMetrics struct {
	requests       prometheus.Counter
	transitions    *prometheus.CounterVec
	workerOutcomes *prometheus.CounterVec
	auditedEvents  *prometheus.CounterVec
}

func NewGenerationMetrics(registerer prometheus.Registerer) *GenerationMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &GenerationMetrics{
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "requests_total",
			Help:      "Generation requests accepted and persisted.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "status_transitions_total",
			Help:      "Entity product status changes by source and target state.",
		}, []string{"from", "to"}),
		workerOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "worker_jobs_total",
			Help:      "Generation jobs handled by the worker by outcome.",
		}, []string{"outcome"}),
		auditedEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "audited_total",
			Help:      "Domain events received back from the event bus.",
		}, []string{"type"}),
	}

	registerer.MustRegister(m.requests, m.transitions, m.workerOutcomes, m.auditedEvents)
	return m
}

func (m *GenerationMetrics) ObserveRequest() {
	if m == nil {
		return
	}
	m.requests.Inc()
}

func (m *GenerationMetrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	if from == "" {
		from = "none"
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *GenerationMetrics) ObserveWorkerOutcome(outcome string) {
	if m == nil {
		return
	}
	m.workerOutcomes.WithLabelValues(outcome).Inc()
}

func (m *GenerationMetrics) ObserveAuditedEvent(eventType string) {
	if m == nil {
		return
	}
	m.auditedEvents.WithLabelValues(eventType).Inc()
}
