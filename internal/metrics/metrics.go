// Package metrics exposes Prometheus collectors for the HTTP API, LLM calls
// and assessment outcomes.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/phase"
)

// Metrics owns a registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	LLMCalls    *prometheus.CounterVec
	LLMLatency  *prometheus.HistogramVec
	LLMTokens   *prometheus.CounterVec
	Assessments *prometheus.CounterVec
	Scores      *prometheus.HistogramVec
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 15, 30},
			},
			[]string{"method", "endpoint"},
		),

		LLMCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ksa_llm_calls_total",
				Help: "LLM calls by purpose, model and outcome",
			},
			[]string{"purpose", "model", "outcome"},
		),
		LLMLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ksa_llm_call_duration_seconds",
				Help:    "Latency of LLM calls",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
			},
			[]string{"purpose", "model"},
		),
		LLMTokens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ksa_llm_tokens_total",
				Help: "Tokens consumed by LLM calls",
			},
			[]string{"purpose", "model", "direction"},
		),

		Assessments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ksa_assessments_total",
				Help: "Acknowledged assessments by sector, phase and result",
			},
			[]string{"sector", "phase", "result"},
		),
		Scores: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ksa_assessment_score",
				Help:    "Distribution of assessment scores",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
			[]string{"phase"},
		),
	}

	m.registry.MustRegister(
		m.RequestCounter, m.RequestDuration,
		m.LLMCalls, m.LLMLatency, m.LLMTokens,
		m.Assessments, m.Scores,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveLLMCall implements llm.Observer.
func (m *Metrics) ObserveLLMCall(purpose, model string, success bool, latency time.Duration, usage llm.Usage) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.LLMCalls.WithLabelValues(purpose, model, outcome).Inc()
	m.LLMLatency.WithLabelValues(purpose, model).Observe(latency.Seconds())
	m.LLMTokens.WithLabelValues(purpose, model, "input").Add(float64(usage.InputTokens))
	m.LLMTokens.WithLabelValues(purpose, model, "output").Add(float64(usage.OutputTokens))
}

// ObserveAssessment implements session.Observer.
func (m *Metrics) ObserveAssessment(sector string, p phase.Phase, score int, passed bool) {
	result := "failed"
	if passed {
		result = "passed"
	}
	m.Assessments.WithLabelValues(sector, string(p), result).Inc()
	m.Scores.WithLabelValues(string(p)).Observe(float64(score))
}

// Middleware records request counts and durations by route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		m.RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
