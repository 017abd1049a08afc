package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"lodging/config"
	deliverycontext "lodging/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "fast queries are silent below info level")

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is expected")

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newGormSlogLogger(newBufferLogger(&buf), cfg)

	l.Trace(context.Background(), time.Now(), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM query")
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))

	l.Error(ctx, "failed %s", "statement")

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "failed statement")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, errors.New("boom"))
	l.Warn(context.Background(), "ignored")

	assert.Empty(t, buf.String())
}
