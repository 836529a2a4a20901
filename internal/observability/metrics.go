package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rols_web"

// Metrics groups the collectors exported by the web server. Each instance owns its
// registry so tests can build as many as they like.
type Metrics struct {
	registry         *prometheus.Registry
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
	externalRequests *prometheus.CounterVec
	externalLatency  *prometheus.HistogramVec
	selections       *prometheus.CounterVec
	leads            *prometheus.CounterVec
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		externalRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "external_requests_total", Help: "Outbound requests."},
			[]string{"service", "endpoint", "status"},
		),
		externalLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "external_request_duration_seconds",
				Help:    "Outbound request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "endpoint"},
		),
		selections: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "selections_total", Help: "Rendered selections by currency and region."},
			[]string{"currency", "region"},
		),
		leads: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "trial_leads_total", Help: "Trial form submissions by outcome."},
			[]string{"outcome"}, // accepted|failed
		),
	}
	m.registry.MustRegister(
		m.httpRequests, m.httpLatency,
		m.externalRequests, m.externalLatency,
		m.selections, m.leads,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (m *Metrics) ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.externalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	m.externalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

// ObserveSelection counts a rendered currency/region combination.
func (m *Metrics) ObserveSelection(currency, region string) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(currency, region).Inc()
}

// ObserveLead counts a trial submission; outcome is "accepted" or "failed".
func (m *Metrics) ObserveLead(outcome string) {
	if m == nil {
		return
	}
	m.leads.WithLabelValues(outcome).Inc()
}
