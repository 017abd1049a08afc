package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"lodging/config"
	"lodging/internal/delivery"
	"lodging/internal/delivery/http/middleware"
	"lodging/internal/delivery/http/router"
	"lodging/internal/delivery/http/validator"
	sharedmiddleware "lodging/internal/delivery/middleware"
	"lodging/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *middleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the public API server.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Config, params.Logger, params.ErrorMiddleware)

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// NewEcho returns an echo instance with the shared middleware chain and
// error handling but no routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, errorMiddleware *middleware.ErrorMiddleware) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(sharedmiddleware.NewRequestIDMiddleware(logger).Process)
	echoServer.Use(slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		Filters:          []slogecho.Filter{slogecho.IgnorePath("/health")},
	}))
	echoServer.Use(echomiddleware.CORS())
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
