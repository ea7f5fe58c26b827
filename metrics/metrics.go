// Package metrics provides Prometheus metrics for the DoubleCheck query
// backend. It tracks tool calls, wiki API traffic, throttle pressure, and
// pagination behavior.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "wikiloop_doublecheck"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures tool-call latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Tool-call latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing tool calls
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of tool calls currently being processed",
	}, []string{"tool"})

	// WikiAPIRequestsTotal counts Action API requests by wiki, action and status
	WikiAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "wiki_api_requests_total",
		Help:      "Total Action API requests by wiki, action and status",
	}, []string{"wiki", "action", "status"})

	// WikiAPILatency measures Action API call latency by wiki and action
	WikiAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "wiki_api_latency_seconds",
		Help:      "Action API call latency by wiki and action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"wiki", "action"})

	// WikiAPIErrors counts Action API failures by error code
	WikiAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "wiki_api_errors_total",
		Help:      "Action API errors by wiki, action and error code",
	}, []string{"wiki", "action", "error_code"})

	// ThrottleWaits counts requests that passed through the shared throttle
	ThrottleWaits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "throttle_waits_total",
		Help:      "Requests dispatched through the shared throttle",
	})

	// ThrottleWaitSeconds measures time spent queued for dispatch
	ThrottleWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "throttle_wait_seconds",
		Help:      "Time requests spent waiting on the shared throttle",
		Buckets:   []float64{.001, .01, .05, .1, .25, .5, 1, 2.5, 5},
	})

	// CategoryWalkPages measures pages fetched per category traversal
	CategoryWalkPages = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "category_walk_pages",
		Help:      "Continuation pages fetched per category traversal",
		Buckets:   []float64{1, 2, 3, 5, 10, 25, 50, 100},
	}, []string{"wiki"})

	// SamplePoolSize measures candidate pool sizes before sampling
	SamplePoolSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "sample_pool_size",
		Help:      "Candidate pool size before revision sampling",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"wiki", "feed"})

	// PanicsRecovered counts recovered panics in tool handlers
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records one Action API request
func RecordAPICall(wiki, action string, duration float64, success bool, errorCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	WikiAPIRequestsTotal.WithLabelValues(wiki, action, status).Inc()
	WikiAPILatency.WithLabelValues(wiki, action).Observe(duration)
	if errorCode != "" {
		WikiAPIErrors.WithLabelValues(wiki, action, errorCode).Inc()
	}
}

// RecordThrottleWait records one pass through the shared throttle
func RecordThrottleWait(seconds float64) {
	ThrottleWaits.Inc()
	ThrottleWaitSeconds.Observe(seconds)
}

// ObserveCategoryWalk records the page count of a finished traversal
func ObserveCategoryWalk(wiki string, pages int) {
	CategoryWalkPages.WithLabelValues(wiki).Observe(float64(pages))
}

// ObserveSamplePool records a candidate pool size before sampling
func ObserveSamplePool(wiki, feed string, size int) {
	SamplePoolSize.WithLabelValues(wiki, feed).Observe(float64(size))
}
