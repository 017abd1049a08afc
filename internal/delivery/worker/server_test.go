package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lodging/config"
	"lodging/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho() *echo.Echo {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger})

	return NewEcho(cfg, logger, pushHandler)
}

func TestWorkerHealth(t *testing.T) {
	e := newTestEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestWorkerPushRejectsGarbage(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
