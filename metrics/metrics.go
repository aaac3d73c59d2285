// Package metrics collects and exposes the gateway's prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is what middleware and services record into.
type MetricsCollector interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordTransition(entity, target string)
	RecordDecompressFallback()
	RecordCacheLookup(hit bool)
	RecordNotification(topic string)
}

// Collector is the prometheus implementation of MetricsCollector.
type Collector struct {
	requests           *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	transitions        *prometheus.CounterVec
	decompressFallback prometheus.Counter
	cacheLookups       *prometheus.CounterVec
	notifications      *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_gateway_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travel_gateway_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_gateway_status_transitions_total",
			Help: "Accepted content status transitions by entity and target status.",
		}, []string{"entity", "target"}),
		decompressFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travel_gateway_decompress_fallback_total",
			Help: "Stored fields that were not compressed and were returned as plain text.",
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_gateway_cache_lookups_total",
			Help: "Response cache lookups by result.",
		}, []string{"result"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_gateway_notifications_published_total",
			Help: "Notification events published by topic.",
		}, []string{"topic"}),
	}

	reg.MustRegister(
		c.requests,
		c.requestDuration,
		c.transitions,
		c.decompressFallback,
		c.cacheLookups,
		c.notifications,
	)

	return c
}

func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordTransition(entity, target string) {
	c.transitions.WithLabelValues(entity, target).Inc()
}

func (c *Collector) RecordDecompressFallback() {
	c.decompressFallback.Inc()
}

func (c *Collector) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheLookups.WithLabelValues(result).Inc()
}

func (c *Collector) RecordNotification(topic string) {
	c.notifications.WithLabelValues(topic).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordRequest(string, string, int, time.Duration) {}
func (Nop) RecordTransition(string, string)                  {}
func (Nop) RecordDecompressFallback()                        {}
func (Nop) RecordCacheLookup(bool)                           {}
func (Nop) RecordNotification(string)                        {}
