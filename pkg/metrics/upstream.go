package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of calls to the backend API in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation", "outcome"},
	)

	AuditEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "events_total",
			Help:      "Audit events by publish outcome",
		},
		[]string{"type", "outcome"},
	)
)

func init() {
	Registry.MustRegister(UpstreamRequestDuration, AuditEventsTotal)
}

// ObserveUpstream records one upstream call.
func ObserveUpstream(operation, outcome string, elapsed time.Duration) {
	UpstreamRequestDuration.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}
