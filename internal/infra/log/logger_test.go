package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"lodging/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := parseLogLevel(tc.input)
			if tc.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "lodging"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("key", "value"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "lodging", entry["service"])
	assert.Equal(t, "value", entry["key"])
}

func TestNewLogger_Pretty(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	logger.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}
