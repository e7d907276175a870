package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Path is where the registry is served
	Path = "/metrics"

	// RouteUnmatched labels requests that matched no route
	RouteUnmatched = "unmatched"
)

// Recorder owns a private prometheus registry with HTTP request series and
// the vLLM engine gauges that inference gateways scrape from model server
// pods. The engine gauges stay at zero except num_requests_running, which
// tracks in-flight HTTP requests.
type Recorder struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	running prometheus.Gauge
	waiting prometheus.Gauge
	kvCache prometheus.Gauge
}

// New creates a Recorder whose vLLM gauges are labelled with modelName
func New(modelName string) *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	x := &Recorder{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vllm_mock_http_requests_total",
				Help: "Total number of HTTP requests served by the mock",
			},
			[]string{"method", "route", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vllm_mock_http_request_duration_seconds",
				Help:    "HTTP request latency of the mock",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	engine := prometheus.Labels{"model_name": modelName}
	x.running = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "vllm:num_requests_running",
		Help:        "Number of requests currently running",
		ConstLabels: engine,
	})
	x.waiting = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "vllm:num_requests_waiting",
		Help:        "Number of requests waiting to be processed",
		ConstLabels: engine,
	})
	x.kvCache = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "vllm:gpu_cache_usage_perc",
		Help:        "GPU KV-cache usage. 1 means 100 percent usage",
		ConstLabels: engine,
	})

	registry.MustRegister(
		x.requestsTotal,
		x.requestDuration,
		x.running,
		x.waiting,
		x.kvCache,
	)

	return x
}

// Handler serves the registry in the prometheus exposition format
func (x *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(x.registry, promhttp.HandlerOpts{
		Registry: x.registry,
	})
}

// Registry returns the underlying registry
func (x *Recorder) Registry() *prometheus.Registry {
	return x.registry
}

// Begin marks a request as in flight. The returned func must be called
// once the response is written.
func (x *Recorder) Begin() func() {
	x.running.Inc()
	return x.running.Dec
}

// Observe records a finished request
func (x *Recorder) Observe(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = RouteUnmatched
	}
	x.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	x.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
