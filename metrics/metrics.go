// Package metrics provides Prometheus metrics for the Google Ads MCP server.
// It tracks tool calls, Google Ads API latency, error kinds, and response sizes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace and subsystem for all metrics
const (
	Namespace = "google_ads_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// ErrorsByKind counts failed tool calls by error classification
	ErrorsByKind = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "errors_total",
		Help:      "Failed tool calls by tool and error kind",
	}, []string{"tool", "kind"})

	// ResponseTruncations counts responses cut by the size guard
	ResponseTruncations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "response_truncations_total",
		Help:      "Responses truncated to the character limit",
	}, []string{"tool"})

	// ResponseSize tracks rendered response sizes in characters
	ResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "response_size_chars",
		Help:      "Rendered response size distribution in characters",
		Buckets:   []float64{100, 500, 1000, 2500, 5000, 10000, 25000, 50000, 100000},
	}, []string{"format"})

	// AdsAPILatency measures Google Ads API call latency by service and action
	AdsAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "ads_api_latency_seconds",
		Help:      "Google Ads API call latency by service and action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "action"})

	// AdsAPIRequestsTotal counts Google Ads API requests
	AdsAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "ads_api_requests_total",
		Help:      "Total Google Ads API requests by service, action and status",
	}, []string{"service", "action", "status"})

	// AdsAPIErrors counts Google Ads API errors by error kind
	AdsAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "ads_api_errors_total",
		Help:      "Google Ads API errors by service, action and error kind",
	}, []string{"service", "action", "kind"})

	// MutateOperations counts individual mutate operations sent
	MutateOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "mutate_operations_total",
		Help:      "Mutate operations by service, operation type and status",
	}, []string{"service", "operation", "status"})

	// AuthFailures counts authentication failures
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_failures_total",
		Help:      "Authentication failure count by reason",
	}, []string{"reason"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// HTTPRequestsTotal counts HTTP transport requests
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method and status",
	}, []string{"method", "status"})

	// HTTPRequestDuration measures HTTP request latency
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency distribution",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordError records a failed tool call by kind
func RecordError(tool, kind string) {
	ErrorsByKind.WithLabelValues(tool, kind).Inc()
}

// RecordResponse records the size of a rendered response and whether it was truncated
func RecordResponse(tool, format string, size int, truncated bool) {
	if format == "" {
		format = "markdown"
	}
	ResponseSize.WithLabelValues(format).Observe(float64(size))
	if truncated {
		ResponseTruncations.WithLabelValues(tool).Inc()
	}
}

// RecordAPICall records a Google Ads API call. kind is empty on success.
func RecordAPICall(service, action string, duration float64, kind string) {
	status := "success"
	if kind != "" {
		status = "error"
		AdsAPIErrors.WithLabelValues(service, action, kind).Inc()
		if kind == "authentication" {
			AuthFailures.WithLabelValues("oauth").Inc()
		}
	}
	AdsAPIRequestsTotal.WithLabelValues(service, action, status).Inc()
	AdsAPILatency.WithLabelValues(service, action).Observe(duration)
}

// RecordMutate records mutate operations of one type sent in a single call
func RecordMutate(service, operation string, count int, success bool) {
	if count <= 0 {
		return
	}
	status := "success"
	if !success {
		status = "error"
	}
	MutateOperations.WithLabelValues(service, operation, status).Add(float64(count))
}
