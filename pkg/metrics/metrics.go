// Package metrics exposes prometheus instrumentation for the ingestion
// pipeline and the viewer server.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics for the application.
type Registry struct {
	// Ingest metrics
	PositionsParsedTotal   prometheus.Counter
	ConnectionsParsedTotal prometheus.Counter
	ParseFailuresTotal     *prometheus.CounterVec
	IngestDuration         *prometheus.HistogramVec

	// Graph metrics
	GraphNodesTotal prometheus.Gauge
	GraphEdgesTotal prometheus.Gauge

	// Scene metrics
	SceneBuildDuration prometheus.Histogram
	ScenesBuiltTotal   prometheus.Counter

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{registry: reg}
	r.initIngestMetrics()
	r.initGraphMetrics()
	r.initSceneMetrics()
	r.initHTTPMetrics()
	return r
}

// GetPrometheusRegistry returns the underlying prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

func (r *Registry) initIngestMetrics() {
	r.PositionsParsedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "neuroviz_positions_parsed_total",
			Help: "Total number of position records parsed",
		},
	)

	r.ConnectionsParsedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "neuroviz_connections_parsed_total",
			Help: "Total number of connection entries parsed",
		},
	)

	r.ParseFailuresTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "neuroviz_parse_failures_total",
			Help: "Total number of failed parses",
		},
		[]string{"stage"},
	)

	r.IngestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "neuroviz_ingest_duration_seconds",
			Help:    "File ingestion duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"stage"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "neuroviz_graph_nodes_total",
			Help: "Number of nodes in the assembled graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "neuroviz_graph_edges_total",
			Help: "Number of edges in the assembled graph",
		},
	)
}

func (r *Registry) initSceneMetrics() {
	r.SceneBuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "neuroviz_scene_build_duration_seconds",
			Help:    "Scene construction duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)

	r.ScenesBuiltTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "neuroviz_scenes_built_total",
			Help: "Total number of scenes built",
		},
	)
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "neuroviz_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "neuroviz_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
}

// RecordIngest records one completed parse stage.
func (r *Registry) RecordIngest(stage string, records int, duration time.Duration) {
	switch stage {
	case "positions":
		r.PositionsParsedTotal.Add(float64(records))
	case "connections":
		r.ConnectionsParsedTotal.Add(float64(records))
	}
	r.IngestDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordParseFailure records one failed parse stage.
func (r *Registry) RecordParseFailure(stage string) {
	r.ParseFailuresTotal.WithLabelValues(stage).Inc()
}

// RecordGraph records the size of an assembled graph.
func (r *Registry) RecordGraph(nodes, edges int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}

// RecordSceneBuild records one scene construction.
func (r *Registry) RecordSceneBuild(duration time.Duration) {
	r.ScenesBuiltTotal.Inc()
	r.SceneBuildDuration.Observe(duration.Seconds())
}

// RecordHTTPRequest records an HTTP request with its duration.
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
