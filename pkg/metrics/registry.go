// Package metrics holds the Prometheus registry served at /metrics and the
// collectors recorded by the relay, the admin API client and the audit trail.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "adminrelay"

// Registry is the custom Prometheus registry for relay metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
