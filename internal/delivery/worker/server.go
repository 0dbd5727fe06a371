// Package worker serves the order notifier: Pub/Sub pushes order events here and the
// customer is mailed about them.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"farmnaturals/config"
	"farmnaturals/internal/delivery"
	"farmnaturals/internal/delivery/middleware"
	"farmnaturals/internal/delivery/worker/handler"
	"farmnaturals/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	mailModeSMTP = "smtp"
	mailModeLog  = "log"
)

type notifierServer struct {
	cfg    *config.NotifierConfig
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the notifier server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// HealthResponse reports liveness and how order mail is delivered.
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Mail     string `json:"mail"`
	PushPath string `json:"push_path"`
}

// NewServer creates the notifier HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &notifierServer{
		cfg:    params.Cfg.Notifier,
		logger: params.Logger,
		server: newNotifierEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newNotifierEcho builds the router with the health check and the push route.
func newNotifierEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	mailMode := mailModeLog
	if cfg.Mail.Enabled() {
		mailMode = mailModeSMTP
	}
	health := HealthResponse{
		Status:   "ok",
		Service:  "notifier",
		Mail:     mailMode,
		PushPath: cfg.Notifier.PushPath,
	}
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, health)
	})

	// Pub/Sub must be answered before its ack deadline.
	e.POST(cfg.Notifier.PushPath, push.HandlePush,
		echomiddleware.BodyLimit(cfg.Notifier.MaxBodySize),
		echomiddleware.ContextTimeout(cfg.Notifier.HandlerTimeout),
	)

	return e
}

// Serve starts the notifier HTTP server
func (s *notifierServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Port))
	s.logger.Info("Starting notifier HTTP server",
		slog.String("host_port", hostPort),
		slog.String("push_path", s.cfg.PushPath),
	)
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *notifierServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down notifier HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
