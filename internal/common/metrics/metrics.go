// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_queries_resolved_total",
			Help: "Total number of queries resolved, by reconciliation method",
		},
		[]string{"method"},
	)

	QueriesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_queries_failed_total",
			Help: "Total number of queries rejected, by error code",
		},
		[]string{"error_code"},
	)

	CompletionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_completion_requests_total",
			Help: "Completion service calls, by outcome (ok, timeout, error, breaker_open)",
		},
		[]string{"outcome"},
	)

	ResponseParseStrategy = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_response_parse_strategy_total",
			Help: "Which parse strategy decoded the completion response",
		},
		[]string{"strategy"},
	)

	ResolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "resolver_resolution_duration_seconds",
			Help: "Duration of a full query resolution in seconds",
		},
		[]string{"status"},
	)
)
