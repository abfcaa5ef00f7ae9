// Package metrics exposes request counters and latency histograms for the gRPC
// and REST front ends through a prometheus registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transport labels
const (
	TransportGRPC = "grpc"
	TransportREST = "rest"
)

const namespace = "news_api"

// RequestMetrics records one observation per served request
type RequestMetrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	denied   *prometheus.CounterVec
}

// NewRequestMetrics creates the collectors on a fresh registry that also carries
// the Go runtime and process collectors.
func NewRequestMetrics() *RequestMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &RequestMetrics{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Requests served, by transport, route and status code.",
		}, []string{"transport", "route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Request latency, by transport and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"transport", "route"}),
		denied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_denied_total",
			Help:      "Requests to secure routes rejected by the access gate.",
		}, []string{"transport", "route"}),
	}
	registry.MustRegister(m.requests, m.duration, m.denied)
	return m
}

// Observe records a finished request
func (m *RequestMetrics) Observe(transport, route, code string, elapsed time.Duration) {
	m.requests.WithLabelValues(transport, route, code).Inc()
	m.duration.WithLabelValues(transport, route).Observe(elapsed.Seconds())
}

// Denied records a request rejected by the access gate
func (m *RequestMetrics) Denied(transport, route string) {
	m.denied.WithLabelValues(transport, route).Inc()
}

// Registry returns the underlying registry
func (m *RequestMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format
func (m *RequestMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
