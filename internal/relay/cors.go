package relay

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
)

// CORS sets the cross-origin headers on every response of the routes it
// wraps: any origin, the given methods, and Content-Type as the only allowed
// request header.
func CORS(methods ...string) gin.HandlerFunc {
	allowMethods := strings.Join(methods, ", ")

	return func(c *gin.Context) {
		c.Header(HeaderAllowOrigin, "*")
		c.Header(HeaderAllowMethods, allowMethods)
		c.Header(HeaderAllowHeaders, "Content-Type")
		c.Next()
	}
}

// Preflight answers a browser OPTIONS request locally with 200 and no body.
func Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}
