package relay

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginRoute is the browser-facing path of the login relay.
const LoginRoute = "/api/admin/login"

type Router struct {
	login *LoginHandler
}

func NewRouter(login *LoginHandler) *Router {
	return &Router{login: login}
}

func (r *Router) SetUp(engine *gin.Engine) {
	g := engine.Group("", CORS(http.MethodPost, http.MethodOptions))
	g.POST(LoginRoute, r.login.Login)
	g.OPTIONS(LoginRoute, Preflight)
}
