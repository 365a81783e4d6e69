package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/3EEEs/Project-Solar/internal/logging"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvPort      = "SOLAR_PORT"
	EnvLogLevel  = "SOLAR_LOG_LEVEL"
	EnvLogFormat = "SOLAR_LOG_FORMAT"
	EnvMetrics   = "SOLAR_METRICS"
)

// Config holds runtime settings for the CLI and server.
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	MetricsEnabled bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:           8080,
		LogLevel:       "info",
		LogFormat:      "text",
		MetricsEnabled: true,
	}
}

// Load reads the given dotenv files (".env" when none are named) into the
// process environment, then builds a Config from it. Missing dotenv files
// are ignored; variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from a variable lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("%s: invalid port %q", EnvPort, v)
		}
		cfg.Port = port
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if _, err := logging.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		if v != "text" && v != "json" {
			return Config{}, fmt.Errorf("%s: unknown format %q", EnvLogFormat, v)
		}
		cfg.LogFormat = v
	}
	if v, ok := lookup(EnvMetrics); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMetrics, err)
		}
		cfg.MetricsEnabled = enabled
	}

	return cfg, nil
}
