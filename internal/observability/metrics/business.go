// Package metrics defines the Prometheus business metrics of the service.
// HTTP-level metrics live in the handler layer; this package covers the
// domain operations (summarization, history, auth).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	summaryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_requests_total",
			Help: "Total number of summarize requests by outcome",
		},
		[]string{"outcome"},
	)

	historyOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "history_operations_total",
			Help: "Total number of history store operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	authAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of signup/login attempts by operation and result",
		},
		[]string{"operation", "result"},
	)
)

// Summary request outcomes.
const (
	OutcomeSuccess        = "success"
	OutcomeFetchError     = "fetch_error"
	OutcomeSummarizeError = "summarize_error"
	OutcomeStoreError     = "store_error"
	OutcomeInvalidInput   = "invalid_input"
)

// Auth operations and results.
const (
	AuthOperationSignup = "signup"
	AuthOperationLogin  = "login"
	AuthOperationVerify = "verify"

	AuthResultSuccess = "success"
	AuthResultFailure = "failure"
)

// RecordSummaryRequest increments the summarize request counter for the outcome.
func RecordSummaryRequest(outcome string) {
	summaryRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordHistoryOperation increments the history operation counter.
func RecordHistoryOperation(operation, outcome string) {
	historyOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordAuthAttempt increments the auth attempt counter.
func RecordAuthAttempt(operation, result string) {
	authAttemptsTotal.WithLabelValues(operation, result).Inc()
}
