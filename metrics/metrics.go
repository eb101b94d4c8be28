// Package metrics provides the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "cvreview"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	SkillAnalyses   *prometheus.CounterVec
	MissingSkills   prometheus.Histogram
	CatalogFailures prometheus.Counter
	LLMCalls        *prometheus.CounterVec
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),

		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1.0, 3.0, 5.0, 10.0, 30.0},
		}, []string{"route"}),

		SkillAnalyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skill_analyses_total",
			Help:      "Skill-gap analyses by outcome",
		}, []string{"outcome"}),

		MissingSkills: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "missing_skills",
			Help:      "Number of missing skills per successful analysis",
			Buckets:   prometheus.LinearBuckets(0, 5, 8),
		}),

		CatalogFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_failures_total",
			Help:      "Catalog reads that failed and were reported as an empty list",
		}),

		LLMCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_calls_total",
			Help:      "LLM backed operations by operation and outcome",
		}, []string{"operation", "outcome"}),
	}

	m.reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.SkillAnalyses,
		m.MissingSkills,
		m.CatalogFailures,
		m.LLMCalls,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// ObserveAnalysis records one skill-gap analysis.
func (m *Metrics) ObserveAnalysis(missing int, err error) {
	if err != nil {
		m.SkillAnalyses.WithLabelValues(OutcomeFailure).Inc()
		m.CatalogFailures.Inc()
		return
	}
	m.SkillAnalyses.WithLabelValues(OutcomeSuccess).Inc()
	m.MissingSkills.Observe(float64(missing))
}

// ObserveLLM records one LLM backed operation.
func (m *Metrics) ObserveLLM(operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.LLMCalls.WithLabelValues(operation, outcome).Inc()
}
