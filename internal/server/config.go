package server

import (
	"os"
	"strings"
)

// ServerName is reported to clients during the initialize handshake.
const ServerName = "gridpaper-mcp"

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel  = "GRIDPAPER_LOG_LEVEL"
	EnvOutputDir = "GRIDPAPER_OUTPUT_DIR"
)

// Config holds server settings.
type Config struct {
	// Version is reported as serverInfo.version.
	Version string

	// OutputDir is where relative and synthesized filenames are written.
	// When set, paths outside it are rejected. Empty means the process
	// working directory with no restriction.
	OutputDir string

	// Debug enables per-request logging.
	Debug bool
}

// ConfigFromEnv builds a Config from the environment.
func ConfigFromEnv(version string) Config {
	return Config{
		Version:   version,
		OutputDir: os.Getenv(EnvOutputDir),
		Debug:     strings.EqualFold(os.Getenv(EnvLogLevel), "debug"),
	}
}
