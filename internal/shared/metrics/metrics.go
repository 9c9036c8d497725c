package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation kinds.
const (
	KindRecommendations = "recommendations"
	KindSummary         = "summary"
)

// Generation outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
	OutcomeCached  = "cached"
)

var (
	registry = prometheus.NewRegistry()
	factory  = promauto.With(registry)

	generationRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "generation_requests_total",
		Help: "Total generation requests by kind and outcome",
	}, []string{"kind", "outcome"})

	generationDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "generation_duration_ms",
		Help:    "Generation duration in milliseconds",
		Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000},
	}, []string{"kind"})

	recommendationsParsed = factory.NewCounter(prometheus.CounterOpts{
		Name: "recommendations_parsed_total",
		Help: "Total recommendation items parsed from model output",
	})

	recommendationFallbacks = factory.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_fallbacks_total",
		Help: "Responses with no numbered items that fell back to a single recommendation",
	})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IncGeneration counts one generation request.
func IncGeneration(kind, outcome string) {
	generationRequests.WithLabelValues(kind, outcome).Inc()
}

// ObserveGenerationDurationMs records a generation duration in milliseconds.
func ObserveGenerationDurationMs(kind string, value float64) {
	if value < 0 {
		value = 0
	}
	generationDuration.WithLabelValues(kind).Observe(value)
}

// AddRecommendationsParsed adds n parsed items.
func AddRecommendationsParsed(n int) {
	if n <= 0 {
		return
	}
	recommendationsParsed.Add(float64(n))
}

// IncRecommendationFallback counts a single-item fallback.
func IncRecommendationFallback() {
	recommendationFallbacks.Inc()
}

// Registry returns the registry holding the service metrics.
func Registry() *prometheus.Registry {
	return registry
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
