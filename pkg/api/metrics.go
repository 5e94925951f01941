package api

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer is told about every completed round trip. status is 0 when the
// request never got a response.
type Observer interface {
	Observe(endpoint, method string, status int, duration time.Duration)
}

type nopObserver struct{}

func (nopObserver) Observe(string, string, int, time.Duration) {}

// PrometheusObserver counts calls and latencies per endpoint.
type PrometheusObserver struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewPrometheusObserver() *PrometheusObserver {
	return &PrometheusObserver{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "netops_api_requests_total",
				Help: "Backend API calls by endpoint and status.",
			},
			[]string{"endpoint", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "netops_api_request_duration_seconds",
				Help:    "Backend API call latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint", "method"},
		),
	}
}

// Register adds the collectors to reg.
func (o *PrometheusObserver) Register(reg prometheus.Registerer) error {
	if err := reg.Register(o.requests); err != nil {
		return err
	}
	return reg.Register(o.duration)
}

func (o *PrometheusObserver) Observe(endpoint, method string, status int, duration time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	o.requests.WithLabelValues(endpoint, method, code).Inc()
	o.duration.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}
