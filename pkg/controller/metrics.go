package controller

import (
	"net/http"
	"time"

	"urlshot/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware that records per-request count and latency
// on the given meter provider.
func WithMetrics(mp metric.MeterProvider, next http.Handler) (http.Handler, error) {
	meter := mp.Meter("urlshot/api")

	requests, err := meter.Int64Counter("http_server_requests_total",
		metric.WithDescription("Number of handled HTTP requests."))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("http_server_request_duration_seconds",
		metric.WithDescription("HTTP request handling latency in seconds."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		attrs := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.Int("status_code", rec.status),
		)
		requests.Add(r.Context(), 1, attrs)
		duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
	}), nil
}
