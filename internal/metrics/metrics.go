package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "countries_api"

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry *prometheus.Registry

	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	SnapshotSize  prometheus.Gauge
	HTTPRequests  *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on a dedicated registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total number of country queries by query name and outcome",
		}, []string{"query", "outcome"}),
		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Time spent answering a country query, including the snapshot fetch",
			Buckets:   prometheus.DefBuckets,
		}, []string{"query"}),
		SnapshotSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_countries",
			Help:      "Number of countries in the most recently fetched snapshot",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
	}
}

// ObserveQuery records the outcome and latency of a query started at start
func (m *Metrics) ObserveQuery(query string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.QueriesTotal.WithLabelValues(query, outcome).Inc()
	m.QueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}

// ObserveSnapshot records the size of a fetched snapshot
func (m *Metrics) ObserveSnapshot(size int) {
	m.SnapshotSize.Set(float64(size))
}

// IncrementHTTPRequests increments the request counter for a served route
func (m *Metrics) IncrementHTTPRequests(method, route, status string) {
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
