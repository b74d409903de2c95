// Package metrics provides Prometheus metrics collection for the fulfillment service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ShippingRunsTotal tracks shipping processing runs by outcome.
	ShippingRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipping_runs_total",
			Help: "Total number of shipping processing runs",
		},
		[]string{"status"},
	)

	// ShippingRunDuration tracks end-to-end shipping processing duration.
	ShippingRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipping_run_duration_seconds",
			Help:    "Shipping processing duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// ShippingDirectivesTotal counts computed shipping directives.
	ShippingDirectivesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shipping_directives_total",
			Help: "Total number of computed shipping directives",
		},
	)

	// CheckoutsTotal tracks checkout runs by outcome.
	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Total number of checkout runs",
		},
		[]string{"status"},
	)

	// CheckoutDuration tracks end-to-end checkout duration.
	CheckoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_duration_seconds",
			Help:    "Checkout processing duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// CollaboratorCallsTotal tracks downstream collaborator calls by name
	// and result.
	CollaboratorCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collaborator_calls_total",
			Help: "Total number of collaborator calls",
		},
		[]string{"collaborator", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordShippingRun records metrics for one shipping processing run.
func RecordShippingRun(duration time.Duration, status string, directives int) {
	ShippingRunDuration.Observe(duration.Seconds())
	ShippingRunsTotal.WithLabelValues(status).Inc()
	ShippingDirectivesTotal.Add(float64(directives))
}

// RecordCheckout records metrics for one checkout run.
func RecordCheckout(duration time.Duration, status string) {
	CheckoutDuration.Observe(duration.Seconds())
	CheckoutsTotal.WithLabelValues(status).Inc()
}

// RecordCollaboratorCall records the result of one collaborator call.
func RecordCollaboratorCall(collaborator, result string) {
	CollaboratorCallsTotal.WithLabelValues(collaborator, result).Inc()
}
