package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "navigator", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "navigator", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)

	// Searches counts executed searches by the interpretation variant that drove them.
	Searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "navigator", Name: "searches_total", Help: "Executed searches by interpretation source."},
		[]string{"source"},
	)
	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: "navigator", Name: "search_results", Help: "Number of resources returned per search.", Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100}},
	)
	InterpreterFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "navigator", Name: "interpreter_fallbacks_total", Help: "Query interpretations served by the local fallback, by reason."},
		[]string{"reason"},
	)
	Explanations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "navigator", Name: "explanations_total", Help: "Result explanations by source."},
		[]string{"source"},
	)
	SimilarLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "navigator", Name: "similar_lookups_total", Help: "Similarity lookups by outcome."},
		[]string{"outcome"},
	)
	// WriteFailures counts swallowed best-effort inserts (search logs, feedback).
	WriteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "navigator", Name: "best_effort_write_failures_total", Help: "Failed best-effort writes by collection."},
		[]string{"collection"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(Searches)
	reg.MustRegister(SearchResults)
	reg.MustRegister(InterpreterFallbacks)
	reg.MustRegister(Explanations)
	reg.MustRegister(SimilarLookups)
	reg.MustRegister(WriteFailures)
}
