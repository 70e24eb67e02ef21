package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds; analysis runs are dominated by upstream LLM calls.
	latencyBuckets = []float64{
		5, 25, 100, 250,
		500, 1000, 2500, 5000,
		10000, 30000, 60000, 120000,
	}

	scoreBuckets = prometheus.LinearBuckets(0, 10, 11)

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustdrift_requests_total",
			Help: "Total number of API requests processed",
		},
		[]string{"method", "route", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustdrift_request_latency_ms",
			Help:    "API request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"route"},
	)

	AnalysisTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustdrift_analyses_total",
			Help: "Completed analyses by final verdict",
		},
		[]string{"verdict", "deep_dive"},
	)

	AnalysisLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustdrift_analysis_latency_ms",
			Help:    "End to end analysis latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"deep_dive"},
	)

	Cookedness = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trustdrift_cookedness",
			Help:    "Distribution of cookedness scores",
			Buckets: scoreBuckets,
		},
	)

	FlagTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustdrift_flags_total",
			Help: "Deterministic and judge flags raised",
		},
		[]string{"flag"},
	)

	UpstreamErrors = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustdrift_upstream_errors_total",
			Help: "Failed calls to old/new endpoints during collection",
		},
		[]string{"side"},
	)
)

type MetricsConfig struct {
	EnableLatency bool // per-route request latency
	EnableFlags   bool // per-flag counters (cardinality grows with section names)
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency: true,
		EnableFlags:   false,
	}
}

var Config MetricsConfig

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

// Gatherer exposes the private registry for the /metrics endpoint and tests.
func Gatherer() prometheus.Gatherer {
	return registry
}
