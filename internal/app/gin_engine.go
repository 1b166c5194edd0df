package app

import (
	"log/slog"

	"AdminRelay/internal/relay"
	"AdminRelay/pkg/logger"
	"AdminRelay/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine(l *slog.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(
		logger.CorrelationMiddleware(),
		metrics.GinMiddleware(),
		logger.RequestLogger(l, relay.LoginRoute),
		gin.Recovery(),
	)
	return engine
}
