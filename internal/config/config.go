// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/usestring/wetrace/pkg/client"
)

// Output defaults
const (
	DefaultExportDirName        = "wetrace-exports"
	DefaultOutputFormat         = "json"
	DefaultCompactMaxArrayItems = 20
	DefaultCompactMaxStringLen  = 500
	DefaultCompactMaxDepth      = 10
	DefaultQueryCacheMaxItems   = 64
	DefaultHTTPClientTimeoutMs  = 0
	DefaultLogMaxSizeMB         = 10
	DefaultLogMaxBackups        = 5
	DefaultLogMaxAgeDays        = 28
)

// Config holds all configuration for the CLI and MCP server.
type Config struct {
	BaseURL           string        // WETRACE_BASE_URL, default client.DefaultBaseURL
	HTTPClientTimeout time.Duration // HTTP_CLIENT_TIMEOUT_MS, default 0 (no timeout)
	ExportDir         string        // WETRACE_EXPORT_DIR, default ~/wetrace-exports
	Output            string        // WETRACE_OUTPUT, default "json"

	// Compaction defaults (--compact)
	CompactMaxArrayItems int // COMPACT_MAX_ARRAY_ITEMS
	CompactMaxStringLen  int // COMPACT_MAX_STRING_LEN
	CompactMaxDepth      int // COMPACT_MAX_DEPTH, 0 = unlimited

	QueryCacheMaxItems int // QUERY_CACHE_MAX_ITEMS, compiled jq programs kept

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "warn"
	LogFormat     string // LOG_FORMAT, "text" or "json", default "text"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads a .env file from the working directory when present, then
// environment variables with sensible defaults. Variables already set in
// the environment win over the .env file.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		BaseURL:           getEnvString("WETRACE_BASE_URL", client.DefaultBaseURL),
		HTTPClientTimeout: getEnvDurationMs("HTTP_CLIENT_TIMEOUT_MS", DefaultHTTPClientTimeoutMs),
		ExportDir:         ExpandHome(getEnvString("WETRACE_EXPORT_DIR", filepath.Join("~", DefaultExportDirName))),
		Output:            getEnvString("WETRACE_OUTPUT", DefaultOutputFormat),

		CompactMaxArrayItems: getEnvInt("COMPACT_MAX_ARRAY_ITEMS", DefaultCompactMaxArrayItems),
		CompactMaxStringLen:  getEnvInt("COMPACT_MAX_STRING_LEN", DefaultCompactMaxStringLen),
		CompactMaxDepth:      getEnvInt("COMPACT_MAX_DEPTH", DefaultCompactMaxDepth),
		QueryCacheMaxItems:   getEnvInt("QUERY_CACHE_MAX_ITEMS", DefaultQueryCacheMaxItems),

		LogLevel:      getEnvString("LOG_LEVEL", "warn"),
		LogFormat:     getEnvString("LOG_FORMAT", "text"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", DefaultLogMaxSizeMB),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", DefaultLogMaxBackups),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", DefaultLogMaxAgeDays),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
// The path is returned unchanged when the home directory is unknown.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
