package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/wetrace/pkg/client"
)

func TestFromEnv_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"WETRACE_BASE_URL", "HTTP_CLIENT_TIMEOUT_MS", "WETRACE_EXPORT_DIR", "WETRACE_OUTPUT",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "LOG_COMPRESS", "COMPACT_MAX_DEPTH",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, client.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.HTTPClientTimeout)
	assert.Equal(t, filepath.Join(home, DefaultExportDirName), cfg.ExportDir)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.True(t, cfg.LogCompress)
	assert.Equal(t, DefaultQueryCacheMaxItems, cfg.QueryCacheMaxItems)
	assert.Equal(t, DefaultCompactMaxDepth, cfg.CompactMaxDepth)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("WETRACE_BASE_URL", "http://10.0.0.5:5200/api/v1")
	t.Setenv("HTTP_CLIENT_TIMEOUT_MS", "2500")
	t.Setenv("WETRACE_EXPORT_DIR", "/tmp/exports")
	t.Setenv("WETRACE_OUTPUT", "yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_COMPRESS", "off")
	t.Setenv("COMPACT_MAX_ARRAY_ITEMS", "5")
	t.Setenv("COMPACT_MAX_DEPTH", "3")

	cfg := FromEnv()
	assert.Equal(t, "http://10.0.0.5:5200/api/v1", cfg.BaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.HTTPClientTimeout)
	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogCompress)
	assert.Equal(t, 5, cfg.CompactMaxArrayItems)
	assert.Equal(t, 3, cfg.CompactMaxDepth)
}

func TestFromEnv_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("HTTP_CLIENT_TIMEOUT_MS", "soon")
	t.Setenv("LOG_MAX_BACKUPS", "many")

	cfg := FromEnv()
	assert.Equal(t, time.Duration(0), cfg.HTTPClientTimeout)
	assert.Equal(t, DefaultLogMaxBackups, cfg.LogMaxBackups)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WETRACE_BASE_URL=http://from-dotenv:5200/api/v1\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv never overrides variables that are already set, so the
	// variable must be absent rather than empty.
	prev, had := os.LookupEnv("WETRACE_BASE_URL")
	require.NoError(t, os.Unsetenv("WETRACE_BASE_URL"))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv("WETRACE_BASE_URL", prev)
		} else {
			_ = os.Unsetenv("WETRACE_BASE_URL")
		}
	})

	cfg := Load()
	assert.Equal(t, "http://from-dotenv:5200/api/v1", cfg.BaseURL)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "wetrace-exports"), ExpandHome("~/wetrace-exports"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
}
