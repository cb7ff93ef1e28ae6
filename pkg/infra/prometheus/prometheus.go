package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds. Completions routinely take seconds,
	// so the upper buckets stretch further than typical HTTP histograms.
	latencyBuckets = []float64{
		25, 50, 100,
		250, 500, 1000,
		2500, 5000, 10000,
		30000, 60000, 120000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "modelshift_requests_total",
			Help: "Total number of requests processed",
		},
		[]string{"method", "path", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "modelshift_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"method", "path"},
	)

	CompletionTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "modelshift_completions_total",
			Help: "Completions forwarded upstream, by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	CompletionLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "modelshift_completion_latency_ms",
			Help:    "Upstream completion latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider"},
	)

	TokensTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "modelshift_tokens_total",
			Help: "Tokens consumed upstream, by provider and direction",
		},
		[]string{"provider", "direction"}, // direction is "prompt" or "completion"
	)

	EstimatedCostTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "modelshift_estimated_cost_usd_total",
			Help: "Estimated upstream spend in USD, by provider",
		},
		[]string{"provider"},
	)
)

type MetricsConfig struct {
	EnableLatency bool // Request and completion latency histograms
	EnableTokens  bool // Token and cost counters (per-provider cardinality)
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency: true,
		EnableTokens:  true,
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
