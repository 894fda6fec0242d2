package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by route pattern and status code.",
	}, []string{"route", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dashboard",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(requestCounter, requestDuration)
}

// ObserveRequest records one handled request.
func ObserveRequest(route, status string, seconds float64) {
	requestCounter.WithLabelValues(route, status).Inc()
	requestDuration.WithLabelValues(route).Observe(seconds)
}
