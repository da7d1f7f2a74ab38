package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorderInterface abstracts metric publication so services and
// middleware never touch the prometheus registry directly.
type MetricsRecorderInterface interface {
	RecordRequest(method, path string, status int, duration time.Duration)
	IncrementError(code string)
	IncrementResourceWrite(resource, operation string)
}

type PrometheusMetrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	apiErrorsTotal      *prometheus.CounterVec
	resourceWritesTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_milliseconds",
				Help:    "HTTP request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"method", "path"},
		),
		apiErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API error responses by error code",
			},
			[]string{"code"},
		),
		resourceWritesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resource_writes_total",
				Help: "Total number of create/update/delete operations by resource",
			},
			[]string{"resource", "operation"},
		),
	}
}

func (m *PrometheusMetrics) RecordRequest(method, path string, status int, duration time.Duration) {
	statusLabel := statusClass(status)
	m.httpRequestsTotal.WithLabelValues(method, path, statusLabel).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) IncrementError(code string) {
	m.apiErrorsTotal.WithLabelValues(code).Inc()
}

func (m *PrometheusMetrics) IncrementResourceWrite(resource, operation string) {
	m.resourceWritesTotal.WithLabelValues(resource, operation).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// NoopMetrics discards all measurements; used in tests
type NoopMetrics struct{}

func (NoopMetrics) RecordRequest(string, string, int, time.Duration) {}
func (NoopMetrics) IncrementError(string)                            {}
func (NoopMetrics) IncrementResourceWrite(string, string)            {}
