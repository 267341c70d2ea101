// Package metrics exposes HTTP and ledger metrics on a private Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/ports"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics of the service.
type Metrics struct {
	// Registry owns every collector below and backs the /metrics endpoint.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	mutations       *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
}

var _ ports.LedgerMetrics = (*Metrics)(nil)

// NewMetrics creates a dedicated registry, so constructing it twice (as tests
// do) never trips the duplicate collector check.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ft_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ft_http_requests_total",
				Help: "Total HTTP requests by route and status code.",
			},
			[]string{"method", "route", "status"},
		),
		mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ft_ledger_mutations_total",
				Help: "Committed ledger writes by entity and operation.",
			},
			[]string{"entity", "operation"},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ft_stats_cache_lookups_total",
				Help: "Stats cache lookups by result.",
			},
			[]string{"result"},
		),
	}
}

// RecordMutation counts a committed write.
func (m *Metrics) RecordMutation(entity, operation string) {
	m.mutations.WithLabelValues(entity, operation).Inc()
}

// RecordCacheLookup counts a stats cache hit or miss.
func (m *Metrics) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// Middleware records latency and status per matched route. Unmatched paths
// share one label to keep cardinality bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

var _ ports.LedgerMetrics = NoopMetrics{}

func (NoopMetrics) RecordMutation(string, string) {}
func (NoopMetrics) RecordCacheLookup(bool)        {}
