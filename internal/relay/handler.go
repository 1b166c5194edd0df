// Package relay forwards the dashboard login to the backend for browsers that
// cannot call the backend directly.
package relay

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const loginPath = "/admin/login"

// ErrorBody is the only error body the relay ever sends.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

var internalError = ErrorBody{Success: false, Message: "Internal server error"}

type LoginHandler struct {
	forwarder *Forwarder
	logger    *slog.Logger
}

func NewLoginHandler(f *Forwarder, l *slog.Logger) *LoginHandler {
	return &LoginHandler{forwarder: f, logger: l.With(slog.String("component", "relay"))}
}

// Login relays the body to the backend and answers with the backend's status
// and body. Every failure becomes a 500 with a fixed body.
func (h *LoginHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	start := time.Now()

	reply, err := h.forward(c)
	if err != nil {
		h.logger.ErrorContext(ctx, "login relay failed",
			slog.String("operation", "login_relay"),
			slog.Duration("duration", time.Since(start)),
			slog.String("outcome", "error"),
			slog.Any("error", err),
		)
		c.JSON(http.StatusInternalServerError, internalError)
		return
	}

	h.logger.InfoContext(ctx, "login relayed",
		slog.String("operation", "login_relay"),
		slog.Duration("duration", time.Since(start)),
		slog.String("outcome", "ok"),
		slog.Int("upstream_status", reply.Status),
	)
	c.Data(reply.Status, "application/json; charset=utf-8", reply.Body)
}

func (h *LoginHandler) forward(c *gin.Context) (Reply, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return Reply{}, fmt.Errorf("read request: %w", err)
	}
	return h.forwarder.Forward(c.Request.Context(), http.MethodPost, loginPath, body)
}
