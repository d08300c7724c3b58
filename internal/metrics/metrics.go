// Package metrics collects and exposes Prometheus metrics for the draw
// pipeline and the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics interface consumed by the service and API layers.
// A no-op implementation keeps tests free of registry plumbing.
type Recorder interface {
	RecordDraw(backend string)
	RecordDrawRejected(reason string)
	RecordRemoteFallback()
	RecordHTTPRequest(route string, statusCode int, duration time.Duration)
	RecordInterpretation(outcome string)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	draws           *prometheus.CounterVec
	drawRejections  *prometheus.CounterVec
	remoteFallbacks prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpLatency     prometheus.Histogram
	interpretations *prometheus.CounterVec
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arcana_draws_total",
			Help: "Completed daily draws by recording backend.",
		}, []string{"backend"}),
		drawRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arcana_draw_rejections_total",
			Help: "Draw attempts rejected by business rules, by reason.",
		}, []string{"reason"}),
		remoteFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arcana_remote_fallback_total",
			Help: "Draws that fell back to the local ledger because the remote service was unavailable.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arcana_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "status_code"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arcana_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		interpretations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arcana_interpretations_total",
			Help: "Enhanced interpretation generations by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.draws,
		c.drawRejections,
		c.remoteFallbacks,
		c.httpRequests,
		c.httpLatency,
		c.interpretations,
	)

	return c
}

// RecordDraw counts a completed draw against its recording backend
// ("local" or "remote").
func (c *Collector) RecordDraw(backend string) {
	c.draws.WithLabelValues(backend).Inc()
}

// RecordDrawRejected counts a rejected draw attempt, e.g. "already_drawn"
// or "quota_exceeded".
func (c *Collector) RecordDrawRejected(reason string) {
	c.drawRejections.WithLabelValues(reason).Inc()
}

// RecordRemoteFallback counts a local-ledger fallback.
func (c *Collector) RecordRemoteFallback() {
	c.remoteFallbacks.Inc()
}

// RecordHTTPRequest counts a served request and observes its latency.
func (c *Collector) RecordHTTPRequest(route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(route, strconv.Itoa(statusCode)).Inc()
	c.httpLatency.Observe(duration.Seconds())
}

// RecordInterpretation counts an enhanced interpretation attempt by outcome
// ("success" or "error").
func (c *Collector) RecordInterpretation(outcome string) {
	c.interpretations.WithLabelValues(outcome).Inc()
}

// Handler returns the Prometheus scrape handler for the gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop is a Recorder that discards every observation.
type Noop struct{}

var _ Recorder = Noop{}

func (Noop) RecordDraw(string)                            {}
func (Noop) RecordDrawRejected(string)                    {}
func (Noop) RecordRemoteFallback()                        {}
func (Noop) RecordHTTPRequest(string, int, time.Duration) {}
func (Noop) RecordInterpretation(string)                  {}
