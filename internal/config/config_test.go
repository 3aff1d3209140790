package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvTolerance, "")
	t.Setenv(EnvWatchDebounce, "")

	want := &Config{
		LogLevel:      "warn",
		LogFormat:     "text",
		Tolerance:     5,
		WatchDebounce: DefaultWatchDebounce,
	}
	if diff := cmp.Diff(want, LoadFromEnv()); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvTolerance, "12")
	t.Setenv(EnvWatchDebounce, "2s")

	want := &Config{
		LogLevel:      "debug",
		LogFormat:     "json",
		Tolerance:     12,
		WatchDebounce: 2 * time.Second,
	}
	if diff := cmp.Diff(want, LoadFromEnv()); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromEnv_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name      string
		tolerance string
		debounce  string
	}{
		{"out of range", "300", "-1s"},
		{"negative", "-4", "0s"},
		{"garbage", "lots", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvTolerance, tt.tolerance)
			t.Setenv(EnvWatchDebounce, tt.debounce)

			cfg := LoadFromEnv()
			if cfg.Tolerance != 5 {
				t.Errorf("Tolerance: got %d, want 5", cfg.Tolerance)
			}
			if cfg.WatchDebounce != DefaultWatchDebounce {
				t.Errorf("WatchDebounce: got %v, want %v", cfg.WatchDebounce, DefaultWatchDebounce)
			}
		})
	}
}
