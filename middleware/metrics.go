package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/assetkit/assetkit/core/handler"
)

// HTTPMetrics holds per-request Prometheus collectors. Construct one per
// registry; sharing a single instance across all routes is the normal use.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewHTTPMetrics registers request collectors on the given registerer.
// Pass prometheus.DefaultRegisterer for the default registry, or a fresh
// prometheus.NewRegistry() in tests.
func NewHTTPMetrics(reg prometheus.Registerer, namespace string) *HTTPMetrics {
	factory := promauto.With(reg)
	return &HTTPMetrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// RequestsTotal exposes the request counter, mainly for assertions in tests.
func (m *HTTPMetrics) RequestsTotal() *prometheus.CounterVec { return m.requestsTotal }

// Metrics instruments handlers with request count and latency metrics.
// Labels are method and status only; paths are unbounded for a static
// file server and would explode label cardinality.
func Metrics[C handler.Context](m *HTTPMetrics) handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			start := time.Now()
			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
				err := resp(sw, r)

				m.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
				m.requestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
				return err
			}
		}
	}
}
