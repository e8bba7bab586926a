package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report-generation pipeline and the preview server.
type Metrics struct {
	RunsTotal   prometheus.Counter
	RunFailures prometheus.Counter
	DatasetRows prometheus.Gauge

	// Per-artifact render metrics.
	ArtifactsRendered *prometheus.CounterVec   // label: artifact
	RenderDuration    *prometheus.HistogramVec // label: artifact
	ArtifactBytes     *prometheus.GaugeVec     // label: artifact

	HTTPRequests *prometheus.CounterVec // label: path
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "health_atlas",
			Name:      "runs_total",
			Help:      "Total report-generation runs started.",
		}),
		RunFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "health_atlas",
			Name:      "run_failures_total",
			Help:      "Total report-generation runs that ended in an error.",
		}),
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "health_atlas",
			Name:      "dataset_rows",
			Help:      "Community areas in the joined dataset of the last run.",
		}),
		ArtifactsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "health_atlas",
			Name:      "artifacts_rendered_total",
			Help:      "Artifacts rendered, by artifact name.",
		}, []string{"artifact"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "health_atlas",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering each artifact.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"artifact"}),
		ArtifactBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "health_atlas",
			Name:      "artifact_bytes",
			Help:      "Size of each rendered artifact in bytes.",
		}, []string{"artifact"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "health_atlas",
			Name:      "http_requests_total",
			Help:      "Preview server requests, by path.",
		}, []string{"path"}),
	}

	prometheus.MustRegister(
		m.RunsTotal,
		m.RunFailures,
		m.DatasetRows,
		m.ArtifactsRendered,
		m.RenderDuration,
		m.ArtifactBytes,
		m.HTTPRequests,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RunsTotal:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "health_atlas", Name: "runs_total"}),
		RunFailures:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "health_atlas", Name: "run_failures_total"}),
		DatasetRows:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "health_atlas", Name: "dataset_rows"}),
		ArtifactsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "health_atlas", Name: "artifacts_rendered_total"}, []string{"artifact"}),
		RenderDuration:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "health_atlas", Name: "render_duration_seconds"}, []string{"artifact"}),
		ArtifactBytes:     prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: "health_atlas", Name: "artifact_bytes"}, []string{"artifact"}),
		HTTPRequests:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "health_atlas", Name: "http_requests_total"}, []string{"path"}),
	}
}
