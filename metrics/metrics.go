// Package metrics provides Prometheus instrumentation for the TheSeed
// client: request counts and latencies per operation, plus counters for the
// protocol-level failure modes (edit conflicts, token expiries, throttling).
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "theseed_client"
)

var (
	// RequestsTotal counts API round trips by operation and HTTP status.
	// Transport failures that never produced a response count as status "0".
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total API requests by operation and HTTP status",
	}, []string{"operation", "status"})

	// RequestDuration measures round-trip latency by operation
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "API round-trip latency distribution by operation",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation"})

	// EditConflictsTotal counts submissions rejected because another edit
	// landed between token issuance and submission
	EditConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "edit_conflicts_total",
		Help:      "Submissions rejected due to an intervening edit",
	})

	// TokenExpiriesTotal counts submissions rejected for an expired or
	// already-consumed edit token
	TokenExpiriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "token_expiries_total",
		Help:      "Submissions rejected due to an expired or reused token",
	})

	// RateLimitedTotal counts requests the server throttled
	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limited_total",
		Help:      "Requests throttled by the server",
	})
)

// ObserveRequest records one completed round trip. status 0 means the
// request failed before a response arrived.
func ObserveRequest(operation string, status int, seconds float64) {
	RequestsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(operation).Observe(seconds)
}

// RecordEditConflict counts a conflict rejection.
func RecordEditConflict() {
	EditConflictsTotal.Inc()
}

// RecordTokenExpiry counts an expired/reused-token rejection.
func RecordTokenExpiry() {
	TokenExpiriesTotal.Inc()
}

// RecordRateLimited counts a throttled request.
func RecordRateLimited() {
	RateLimitedTotal.Inc()
}
