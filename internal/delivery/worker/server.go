// Package worker hosts the Pub/Sub push endpoint consuming reservation events.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"lodging/config"
	"lodging/internal/delivery"
	"lodging/internal/delivery/middleware"
	"lodging/internal/delivery/worker/handler"
	"lodging/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Cfg, params.Logger, params.PushHandler)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho wires the worker routes behind recover, request id and logging middleware.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Recover first, request id before the logger so logs carry it.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", pushHandler.HandlePush)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Worker.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
