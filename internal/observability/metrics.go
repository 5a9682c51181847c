package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the graph service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	buildDuration *prometheus.HistogramVec
	buildNodes    *prometheus.HistogramVec
	buildEdges    *prometheus.HistogramVec
	truncated     *prometheus.CounterVec
	buildErrors   *prometheus.CounterVec
}

var sizeBuckets = []float64{1, 10, 50, 100, 250, 500, 1000, 2000, 4000, 8000}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "orggraph_http_requests_total",
			Help: "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		httpLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orggraph_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		buildDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orggraph_graph_build_duration_seconds",
			Help:    "Graph materialization latency by view",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"view"}),
		buildNodes: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orggraph_graph_nodes",
			Help:    "Nodes emitted per build",
			Buckets: sizeBuckets,
		}, []string{"view"}),
		buildEdges: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orggraph_graph_edges",
			Help:    "Edges emitted per build",
			Buckets: sizeBuckets,
		}, []string{"view"}),
		truncated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "orggraph_graph_truncated_total",
			Help: "Builds that hit a node or edge cap",
		}, []string{"view"}),
		buildErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "orggraph_graph_build_errors_total",
			Help: "Failed builds by view and error class",
		}, []string{"view", "class"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, http.StatusText(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ObserveBuild(view string, nodes, edges int, truncated bool, d time.Duration) {
	if m == nil {
		return
	}
	m.buildDuration.WithLabelValues(view).Observe(d.Seconds())
	m.buildNodes.WithLabelValues(view).Observe(float64(nodes))
	m.buildEdges.WithLabelValues(view).Observe(float64(edges))
	if truncated {
		m.truncated.WithLabelValues(view).Inc()
	}
}

func (m *Metrics) BuildFailed(view, class string) {
	if m == nil {
		return
	}
	m.buildErrors.WithLabelValues(view, class).Inc()
}
