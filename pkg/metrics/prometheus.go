// Package metrics exposes Prometheus metrics for evaluation runs: verdict
// outcomes per generator/relation/semantics plus agent request accounting.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EvaluationMetrics holds all Prometheus metrics for the benchmark.
type EvaluationMetrics struct {
	VerdictsTotal    *prometheus.CounterVec
	CasesTotal       *prometheus.CounterVec
	CasesSkipped     *prometheus.CounterVec
	AgentRequests    *prometheus.CounterVec
	AgentLatency     *prometheus.HistogramVec
	GroundTruthCache *prometheus.CounterVec
}

// New registers and returns the metric set on the given registerer. A nil
// registerer uses the default one.
func New(reg prometheus.Registerer) *EvaluationMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &EvaluationMetrics{
		VerdictsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "afbench_verdicts_total",
				Help: "Verdicts emitted, by generator, relation, semantics and outcome",
			},
			[]string{"generator", "relation", "semantics", "verdict"},
		),
		CasesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "afbench_cases_total",
				Help: "Evaluation cases started, by generator",
			},
			[]string{"generator"},
		),
		CasesSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "afbench_cases_skipped_total",
				Help: "Cases skipped by configuration errors, by generator",
			},
			[]string{"generator"},
		),
		AgentRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "afbench_agent_requests_total",
				Help: "Agent queries, by model and status",
			},
			[]string{"model", "status"},
		),
		AgentLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "afbench_agent_latency_seconds",
				Help:    "Agent query latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"model"},
		),
		GroundTruthCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "afbench_ground_truth_cache_total",
				Help: "Ground-truth cache lookups, by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveAgentRequest records one agent query.
func (m *EvaluationMetrics) ObserveAgentRequest(model string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.AgentRequests.WithLabelValues(model, status).Inc()
	m.AgentLatency.WithLabelValues(model).Observe(time.Since(start).Seconds())
}
