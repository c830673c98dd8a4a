package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// namespace prefixes every metric exposed by the service.
const namespace = "greenplate"

// Metrics bundles the Prometheus collectors for the service. Create one
// with New and share it between the API handler and the WebSocket hub.
type Metrics struct {
	// RequestsTotal counts HTTP requests by route path and status code.
	RequestsTotal *prometheus.CounterVec

	// KPIGenerated counts KPI records produced, by period label.
	KPIGenerated *prometheus.CounterVec

	// WSClients tracks the number of currently connected stream clients.
	WSClients prometheus.Gauge

	// RequestDuration observes per-request handling time in seconds.
	RequestDuration prometheus.Summary
}

// New creates the collectors and registers them on reg. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh
// prometheus.NewRegistry() so runs never collide.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by route and status code",
		}, []string{"path", "code"}),
		KPIGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kpi_generated_total",
			Help:      "KPI records generated, by period label",
		}, []string{"period"}),
		WSClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ws_clients",
			Help:      "Currently connected WebSocket stream clients",
		}),
		RequestDuration: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time spent handling HTTP requests",
		}),
	}

	reg.MustRegister(m.RequestsTotal, m.KPIGenerated, m.WSClients, m.RequestDuration)
	return m
}

// ObserveRequest records one handled request.
func (m *Metrics) ObserveRequest(path string, code int, d time.Duration) {
	m.RequestsTotal.WithLabelValues(path, strconv.Itoa(code)).Inc()
	m.RequestDuration.Observe(d.Seconds())
}

// CountKPI records one generated KPI record for the given period label.
func (m *Metrics) CountKPI(period string) {
	m.KPIGenerated.WithLabelValues(period).Inc()
}
