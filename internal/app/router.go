package app

import (
	"AdminRelay/internal/dashboard"
	"AdminRelay/internal/relay"
	"AdminRelay/pkg/health"
	"AdminRelay/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	relay          *relay.Router
	dashboard      *dashboard.Router
	healthRegistry *health.Registry
}

func NewRouter(relayRouter *relay.Router, dashboardRouter *dashboard.Router, healthRegistry *health.Registry) *Router {
	return &Router{
		relay:          relayRouter,
		dashboard:      dashboardRouter,
		healthRegistry: healthRegistry,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	r.relay.SetUp(engine)
	r.dashboard.SetUp(engine)
}
