package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestSetup_TextToWriter(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Writer = &buf

	cleanup, err := Setup(cfg)
	require.NoError(t, err)
	defer cleanup()

	slog.Info("hidden")
	slog.Warn("shown", "path", "/sessions")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "path=/sessions")
}

func TestSetup_JSONFormat(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	cleanup, err := Setup(Config{Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)
	defer cleanup()

	slog.Debug("request", "status", 200)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "request", rec["msg"])
	assert.Equal(t, float64(200), rec["status"])
}

func TestSetup_FileCreatesDirectory(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "nested", "wetrace.log")
	cfg := DefaultConfig()
	cfg.FilePath = path

	cleanup, err := Setup(cfg)
	require.NoError(t, err)

	slog.Error("boom")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "boom")
}
