package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// ingest service.
type Metrics struct {
	UploadsTotal   prometheus.Counter
	UploadFailures *prometheus.CounterVec // labels: reason={unreadable,too_few_columns,no_series,bad_range}

	PointsAssembled    prometheus.Histogram
	FallbackApplied    prometheus.Counter
	ProcessingDuration prometheus.Histogram

	// Sink publishing metrics.
	PointsPublished prometheus.Counter
	PublishErrors   prometheus.Counter
	PublishEnabled  prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		UploadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "templog_ingest",
			Name:      "uploads_total",
			Help:      "Total upload requests accepted for processing.",
		}),
		UploadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "templog_ingest",
			Name:      "upload_failures_total",
			Help:      "Upload requests rejected, by reason.",
		}, []string{"reason"}),
		PointsAssembled: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "templog_ingest",
			Name:      "points_assembled",
			Help:      "Number of cleaned readings assembled per upload.",
			Buckets:   []float64{1, 10, 50, 100, 500, 1000, 5000, 10000, 50000},
		}),
		FallbackApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "templog_ingest",
			Name:      "temperature_fallback_total",
			Help:      "Uploads where a lower-ranked temperature column was used.",
		}),
		ProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "templog_ingest",
			Name:      "processing_duration_seconds",
			Help:      "Duration of a complete decode-detect-assemble cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		PointsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "templog_ingest",
			Name:      "points_published_total",
			Help:      "Total readings written to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "templog_ingest",
			Name:      "publish_errors_total",
			Help:      "Total failed sink topic writes.",
		}),
		PublishEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "templog_ingest",
			Name:      "publish_enabled",
			Help:      "1 when sink publishing is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.UploadsTotal,
		m.UploadFailures,
		m.PointsAssembled,
		m.FallbackApplied,
		m.ProcessingDuration,
		m.PointsPublished,
		m.PublishErrors,
		m.PublishEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		UploadsTotal:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "templog_ingest", Name: "uploads_total"}),
		UploadFailures:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "templog_ingest", Name: "upload_failures_total"}, []string{"reason"}),
		PointsAssembled:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "templog_ingest", Name: "points_assembled"}),
		FallbackApplied:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "templog_ingest", Name: "temperature_fallback_total"}),
		ProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "templog_ingest", Name: "processing_duration_seconds"}),
		PointsPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "templog_ingest", Name: "points_published_total"}),
		PublishErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "templog_ingest", Name: "publish_errors_total"}),
		PublishEnabled:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "templog_ingest", Name: "publish_enabled"}),
	}
}
