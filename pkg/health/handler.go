package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Probe responses must never be served from a cache between the relay and
// the orchestrator.
func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
}

func LivenessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		noStore(c)
		c.JSON(http.StatusOK, ReadinessResponse{Status: StatusUp})
	}
}

// ReadinessHandler runs every registered check under timeout and answers 503
// when any dependency of the relay is down.
func ReadinessHandler(registry *Registry, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		noStore(c)
		resp := registry.CheckAll(ctx)
		if resp.Status == StatusDown {
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
