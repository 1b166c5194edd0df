package dashboard

import (
	"net/http"

	"AdminRelay/internal/relay"

	"github.com/gin-gonic/gin"
)

const (
	OrdersRoute      = "/api/admin/orders"
	OrderStatusRoute = "/api/admin/orders/:id/status"
	StatsRoute       = "/api/admin/stats"
	OverviewRoute    = "/api/admin/overview"
)

type Router struct {
	handler *Handler
}

func NewRouter(h *Handler) *Router {
	return &Router{handler: h}
}

func (r *Router) SetUp(engine *gin.Engine) {
	g := engine.Group("", relay.CORS(http.MethodGet, http.MethodPut, http.MethodOptions))

	g.GET(OrdersRoute, r.handler.Orders)
	g.PUT(OrderStatusRoute, r.handler.UpdateStatus)
	g.GET(StatsRoute, r.handler.Stats)
	g.GET(OverviewRoute, r.handler.Overview)

	for _, route := range []string{OrdersRoute, OrderStatusRoute, StatsRoute, OverviewRoute} {
		g.OPTIONS(route, relay.Preflight)
	}
}
