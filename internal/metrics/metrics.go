// Package metrics collects per-connection counters of the server and exposes them in
// the prometheus text format.
package metrics

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Connection outcomes. Truncated means the stream ended prematurely, but a response
// was served anyway from whatever had arrived.
const (
	OutcomeServed      = "served"
	OutcomeTruncated   = "truncated"
	OutcomeMalformed   = "malformed"
	OutcomeWriteFailed = "write_failed"
)

type Metrics struct {
	registry    *prometheus.Registry
	connections *prometheus.CounterVec
	requests    *prometheus.CounterVec
	cost        prometheus.Histogram
}

func New() *Metrics {
	buckets := []float64{0.1, 0.5, 1, 5, 20, 100, 500, 2000}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		connections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "minihttp_connections_total",
			Help: "Accepted connections by their outcome.",
		}, []string{"outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "minihttp_requests_total",
			Help: "Served requests by status code, method and route.",
		}, []string{"code", "method", "route"}),
		cost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "minihttp_request_duration_milliseconds",
			Help:    "Time from the accept to the written response.",
			Buckets: buckets,
		}),
	}

	m.registry.MustRegister(m.connections, m.requests, m.cost)

	return m
}

// Connection counts a finished connection.
func (m *Metrics) Connection(outcome string) {
	m.connections.WithLabelValues(outcome).Inc()
}

// Request counts a served request.
func (m *Metrics) Request(code uint16, method, route string, cost time.Duration) {
	m.requests.WithLabelValues(strconv.Itoa(int(code)), method, route).Inc()
	m.cost.Observe(float64(cost) / float64(time.Millisecond))
}

// Handler exposes the collected metrics.
func (m *Metrics) Handler() stdhttp.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
