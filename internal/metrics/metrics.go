package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "watermark"

const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeFailure      = "failure"
)

// Metrics holds the service collectors. A nil *Metrics is a no-op.
type Metrics struct {
	requests           *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	profileSelections  *prometheus.CounterVec
	processingDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		profileSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_selections_total",
			Help:      "Size profiles chosen when stamping images.",
		}, []string{"profile"}),
		processingDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "processing_duration_seconds",
			Help:      "Time spent producing both watermarked outputs.",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.requests, m.requestDuration, m.profileSelections, m.processingDuration)
	return m
}

func (m *Metrics) ObserveRequest(method, path string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(latency.Seconds())
}

func (m *Metrics) ObserveProfile(profile string) {
	if m == nil {
		return
	}
	m.profileSelections.WithLabelValues(profile).Inc()
}

func (m *Metrics) ObserveProcessing(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.processingDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
