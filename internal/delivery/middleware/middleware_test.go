package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lodging/config"
	deliverycontext "lodging/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewRequestIDMiddleware(logger)

	testCases := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"propagates caller id", "abc-123", true},
		{"generates when missing", "", false},
		{"replaces oversized id", strings.Repeat("x", maxRequestIDLength+1), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)

			require.NoError(t, err)
			assert.NotEmpty(t, ctxID)
			assert.Equal(t, ctxID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tc.wantSame {
				assert.Equal(t, tc.header, ctxID)
			} else {
				assert.NotEqual(t, tc.header, ctxID)
			}
		})
	}
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()

	ok := e.NewContext(httptest.NewRequest(http.MethodGet, "/ok", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(ok))
	assert.Empty(t, buf.String())

	failing := e.NewContext(httptest.NewRequest(http.MethodGet, "/boom", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") })(failing))
	assert.Contains(t, buf.String(), `"status":502`)
	assert.Contains(t, buf.String(), "/boom")
}
