// Package middleware holds echo middleware shared by the HTTP and worker servers.
package middleware

import (
	"log/slog"

	deliverycontext "lodging/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied ids before they reach logs and headers.
const maxRequestIDLength = 64

// RequestIDMiddleware generates or extracts a unique Request ID for each request and creates a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id when it is sane, otherwise mints one,
// and stores it with a child logger in the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
