package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"AdminRelay/config"
	"AdminRelay/internal/adminapi"
	"AdminRelay/internal/audit"
	"AdminRelay/internal/dashboard"
	"AdminRelay/internal/relay"
	"AdminRelay/pkg/health"
	"AdminRelay/pkg/logger"

	"github.com/gin-gonic/gin"
)

// App is the assembled relay: HTTP handler plus the resources to release on
// shutdown.
type App struct {
	Handler http.Handler

	client    *adminapi.HTTPClient
	publisher audit.Publisher
}

// New wires every component from cfg. Both the login relay and the admin API
// client read the upstream location from the same config value.
func New(cfg config.RelayConfig, l *slog.Logger) *App {
	upstreamHTTP := &http.Client{Timeout: cfg.UpstreamTimeout}

	client := adminapi.NewHTTPClient(adminapi.HTTPClientConfig{
		BaseURL:    cfg.UpstreamBaseURL,
		Timeout:    cfg.UpstreamTimeout,
		Logger:     l,
		HTTPClient: upstreamHTTP,
	})
	forwarder := relay.NewForwarder(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, upstreamHTTP)

	healthRegistry := health.NewRegistry(health.NewUpstreamChecker(cfg.UpstreamBaseURL, upstreamHTTP))

	var publisher audit.Publisher = audit.NopPublisher{}
	if cfg.AuditEnabled() {
		l.Info("audit trail enabled", slog.Any("brokers", cfg.KafkaBrokers), slog.String("topic", cfg.AuditTopic))
		publisher = audit.NewKafkaPublisher(l, cfg.KafkaBrokers, cfg.AuditTopic)
		healthRegistry.Register(health.NewKafkaChecker(cfg.KafkaBrokers))
	}
	trail := audit.NewTrail(publisher, l)

	engine := NewGinEngine(l)
	router := NewRouter(
		relay.NewRouter(relay.NewLoginHandler(forwarder, l)),
		dashboard.NewRouter(dashboard.NewHandler(client, trail)),
		healthRegistry,
	)
	router.SetUp(engine)

	return &App{Handler: engine, client: client, publisher: publisher}
}

func (a *App) Close() error {
	return errors.Join(a.client.Close(), a.publisher.Close())
}

// Run bootstraps the relay and blocks until SIGINT/SIGTERM.
func Run(cfg config.RelayConfig) {
	l := logger.Setup(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gin.SetMode(gin.ReleaseMode)

	a := New(cfg, l)
	defer func() {
		if err := a.Close(); err != nil {
			l.Error("release resources", slog.Any("error", err))
		}
	}()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: a.Handler,
	}

	go func() {
		l.Info("relay started", slog.Int("port", cfg.Port), slog.String("upstream", cfg.UpstreamBaseURL))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("HTTP server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	l.Info("shutting down relay")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error("server shutdown error", slog.Any("error", err))
	}

	l.Info("relay stopped")
}
