package element

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metricsStartKey struct{}

type metricsStart struct {
	service string
	method  string
	at      time.Time
}

// MetricsElement tracks per-method request counts, in-flight calls and latency.
type MetricsElement struct {
	registry *prometheus.Registry
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsElement creates a metrics element with its own registry. namespace
// prefixes every metric name.
func NewMetricsElement(namespace string) *MetricsElement {
	m := &MetricsElement{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight RPC calls.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Total number of RPC calls handled.",
		}, []string{"service", "method", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "Duration of RPC calls.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 100us to ~1.6s
		}, []string{"service", "method"}),
	}
	m.registry.MustRegister(m.inFlight, m.requests, m.duration)
	return m
}

// Registry exposes the collectors, mainly for tests.
func (m *MetricsElement) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (m *MetricsElement) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Requests returns the request counter for one service/method/result combination.
func (m *MetricsElement) Requests(service, method, result string) prometheus.Counter {
	return m.requests.WithLabelValues(service, method, result)
}

// InFlight returns the in-flight gauge.
func (m *MetricsElement) InFlight() prometheus.Gauge {
	return m.inFlight
}

// ProcessRequest records the call start and passes the request through
func (m *MetricsElement) ProcessRequest(ctx context.Context, req *RPCRequest) (*RPCRequest, context.Context, error) {
	m.inFlight.Inc()
	ctx = context.WithValue(ctx, metricsStartKey{}, metricsStart{
		service: req.ServiceName,
		method:  req.Method,
		at:      time.Now(),
	})
	return req, ctx, nil
}

// ProcessResponse records the outcome and latency of the call
func (m *MetricsElement) ProcessResponse(ctx context.Context, resp *RPCResponse) (*RPCResponse, context.Context, error) {
	start, ok := ctx.Value(metricsStartKey{}).(metricsStart)
	if !ok {
		return resp, ctx, nil
	}
	m.inFlight.Dec()

	result := "ok"
	if resp.Error != nil {
		result = "error"
	}
	m.requests.WithLabelValues(start.service, start.method, result).Inc()
	m.duration.WithLabelValues(start.service, start.method).Observe(time.Since(start.at).Seconds())
	return resp, ctx, nil
}

// Name returns the name of this element
func (m *MetricsElement) Name() string {
	return "MetricsElement"
}
