// Package config reads process defaults from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/ironsheep/gradient-tools/internal/gradient"
)

// Environment variable names.
const (
	EnvLogLevel      = "GRADIENT_LOG_LEVEL"
	EnvLogFormat     = "GRADIENT_LOG_FORMAT"
	EnvTolerance     = "GRADIENT_TOLERANCE"
	EnvWatchDebounce = "GRADIENT_WATCH_DEBOUNCE"
)

// DefaultWatchDebounce is how long watch mode waits after the last file event.
const DefaultWatchDebounce = 500 * time.Millisecond

// Config holds defaults that command-line flags may override.
type Config struct {
	LogLevel      string
	LogFormat     string
	Tolerance     uint8
	WatchDebounce time.Duration
}

// LoadFromEnv builds a Config from the environment. Malformed values fall
// back to their defaults.
func LoadFromEnv() *Config {
	return &Config{
		LogLevel:      getEnvOrDefault(EnvLogLevel, "warn"),
		LogFormat:     getEnvOrDefault(EnvLogFormat, "text"),
		Tolerance:     parseToleranceOrDefault(EnvTolerance, gradient.DefaultTolerance),
		WatchDebounce: parseDurationOrDefault(EnvWatchDebounce, DefaultWatchDebounce),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseToleranceOrDefault(key string, defaultValue uint8) uint8 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			if tol, err := gradient.ToleranceFromInt(n); err == nil {
				return tol
			}
		}
	}
	return defaultValue
}
