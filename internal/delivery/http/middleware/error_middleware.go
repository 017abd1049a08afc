package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"lodging/config"
	deliverycontext "lodging/internal/delivery/context"
	"lodging/internal/delivery/http/response"
	domainerrors "lodging/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg != nil && cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		m.write(c, response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		m.write(c, response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""))

		return
	}

	m.logUnhandled(c, err)

	// Store failures are not described to clients outside debug mode.
	details := ""
	if m.debug {
		details = err.Error()
	}
	m.write(c, response.Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), details))
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func (m *ErrorMiddleware) write(c echo.Context, err error) {
	if err != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
