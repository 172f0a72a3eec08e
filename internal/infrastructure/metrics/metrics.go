// Package metrics exposes Prometheus collectors for the rental search service.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service collectors. Each instance owns its registry so
// tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	flowEvents      *prometheus.CounterVec
	directoryCalls  *prometheus.CounterVec
}

// New registers the collectors under the given namespace.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		flowEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flow_events_total",
			Help:      "Search flow events by type and outcome.",
		}, []string{"event", "outcome"}),
		directoryCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "directory_lookups_total",
			Help:      "City/store directory lookups by source and result.",
		}, []string{"source", "result"}),
	}

	reg.MustRegister(
		m.requests,
		m.requestDuration,
		m.flowEvents,
		m.directoryCalls,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveFlowEvent counts a dispatched event as applied or rejected.
func (m *Metrics) ObserveFlowEvent(event string, applied bool) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if applied {
		outcome = "applied"
	}
	m.flowEvents.WithLabelValues(event, outcome).Inc()
}

// ObserveDirectory counts a directory lookup. result is "hit", "miss" or "error".
func (m *Metrics) ObserveDirectory(source, result string) {
	if m == nil {
		return
	}
	m.directoryCalls.WithLabelValues(source, result).Inc()
}

// Middleware records request count and latency keyed by the matched route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.requests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
			m.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
