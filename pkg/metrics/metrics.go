package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// System metrics
	SystemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_bytes",
		Help: "Current system memory usage",
	})

	SystemGoroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_goroutines",
		Help: "Number of goroutines",
	})

	// Loader metrics
	DocumentsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_documents_loaded_total",
			Help: "Documents handed to the loader, by format and outcome",
		},
		[]string{"format", "status"},
	)

	// Analysis metrics
	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contract_analysis_duration_seconds",
			Help:    "Time spent in each analysis component",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
		[]string{"component"},
	)

	EntitiesExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_entities_extracted_total",
			Help: "Number of entities extracted, by category",
		},
		[]string{"category"},
	)

	RiskIndicatorsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_risk_indicators_total",
			Help: "Number of contracts flagged per risk category",
		},
		[]string{"category"},
	)

	ContractsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_classified_total",
			Help: "Number of contracts per detected type",
		},
		[]string{"contract_type"},
	)

	// LLM metrics
	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_llm_requests_total",
			Help: "Legal verdict requests, by outcome (success, retry, fallback)",
		},
		[]string{"outcome"},
	)

	PromptTokens = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "contract_llm_prompt_tokens",
		Help:    "Estimated prompt size in tokens",
		Buckets: prometheus.LinearBuckets(250, 250, 12),
	})

	ReviewErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_review_errors_total",
			Help: "Total number of failed reviews",
		},
		[]string{"stage"},
	)
)

// UpdateSystemMetrics updates system-level metrics
func UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	SystemMemoryUsage.Set(float64(m.Alloc))
	SystemGoroutines.Set(float64(runtime.NumGoroutine()))
}
