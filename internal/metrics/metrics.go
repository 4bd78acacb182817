// Package metrics exposes Prometheus collectors for the plan-generation
// pipeline and the HTTP surface.
package metrics

import (
	"net/http"
	"time"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/llm"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder registers and updates the generation metrics.
type Recorder struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	duration    prometheus.Histogram
	tokens      *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry, including the
// standard process and Go collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	generations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mealplan_generations_total",
		Help: "Meal plan generation attempts by outcome.",
	}, []string{"outcome"})

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mealplan_generation_duration_seconds",
		Help:    "Wall-clock duration of provider calls including parsing.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})

	tokens := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mealplan_tokens_total",
		Help: "Tokens consumed by the generative provider.",
	}, []string{"kind", "model"})

	registry.MustRegister(generations, duration, tokens)

	return &Recorder{
		registry:    registry,
		generations: generations,
		duration:    duration,
		tokens:      tokens,
	}
}

// ObserveGeneration records one generation attempt.
func (r *Recorder) ObserveGeneration(outcome string, elapsed time.Duration, usage llm.TokenUsage) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(outcome).Inc()
	r.duration.Observe(elapsed.Seconds())
	if usage.PromptTokens > 0 {
		r.tokens.WithLabelValues("prompt", usage.Model).Add(float64(usage.PromptTokens))
	}
	if usage.CompletionTokens > 0 {
		r.tokens.WithLabelValues("completion", usage.Model).Add(float64(usage.CompletionTokens))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
