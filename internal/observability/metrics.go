package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sales-dashboard/internal/datastore"
)

const metricsNamespace = "sales_dashboard"

// Metrics owns a private registry so tests can create as many as they need.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rateLimited     prometheus.Counter
	datasetRecords  prometheus.Gauge
	unmatched       *prometheus.GaugeVec
	loadDuration    prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route, method and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "code"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
		datasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "dataset_records",
			Help:      "Rows in the enriched transaction table.",
		}),
		unmatched: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "dataset_unmatched_records",
			Help:      "Enriched rows whose join found no reference row, by join.",
		}, []string{"join"}),
		loadDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "Time spent loading and merging the CSV sources at startup.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.rateLimited,
		m.datasetRecords,
		m.unmatched,
		m.loadDuration,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// InstrumentHandler counts and times requests served by next under the
// given route pattern. The wrapped writer still implements http.Flusher.
func (m *Metrics) InstrumentHandler(route string, next http.Handler) http.Handler {
	labels := prometheus.Labels{"route": route}
	return promhttp.InstrumentHandlerCounter(
		m.requests.MustCurryWith(labels),
		promhttp.InstrumentHandlerDuration(m.requestDuration.MustCurryWith(labels), next),
	)
}

func (m *Metrics) RecordRateLimited() {
	m.rateLimited.Inc()
}

func (m *Metrics) RecordDataset(stats datastore.MergeStats, took time.Duration) {
	m.datasetRecords.Set(float64(stats.Records))
	m.unmatched.WithLabelValues("category").Set(float64(stats.UnmatchedCategories))
	m.unmatched.WithLabelValues("subcategory").Set(float64(stats.UnmatchedSubcategories))
	m.unmatched.WithLabelValues("customer").Set(float64(stats.UnmatchedCustomers))
	m.unmatched.WithLabelValues("country").Set(float64(stats.UnmatchedCountries))
	m.loadDuration.Set(took.Seconds())
}
