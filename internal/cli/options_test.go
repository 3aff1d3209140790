package cli

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/gradient-tools/internal/config"
	"github.com/ironsheep/gradient-tools/internal/gradient"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:      "error",
		LogFormat:     "text",
		Tolerance:     gradient.DefaultTolerance,
		WatchDebounce: config.DefaultWatchDebounce,
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			"file only",
			[]string{"sky.png"},
			Options{Path: "sky.png", Orientation: gradient.Vertical, Tolerance: 5, Format: FormatText},
		},
		{
			"horizontal and tolerance",
			[]string{"sky.png", "--horizontal", "--tolerance10"},
			Options{Path: "sky.png", Orientation: gradient.Horizontal, Tolerance: 10, Format: FormatText},
		},
		{
			"case insensitive flags",
			[]string{"sky.png", "--HORIZONTAL", "--Tolerance0"},
			Options{Path: "sky.png", Orientation: gradient.Horizontal, Tolerance: 0, Format: FormatText},
		},
		{
			"tolerance with equals",
			[]string{"--tolerance=255", "sky.png"},
			Options{Path: "sky.png", Orientation: gradient.Vertical, Tolerance: 255, Format: FormatText},
		},
		{
			"all outputs",
			[]string{"sky.png", "--format=CSS", "--render=Out.png", "--verify", "--watch"},
			Options{
				Path:        "sky.png",
				Orientation: gradient.Vertical,
				Tolerance:   5,
				Format:      FormatCSS,
				RenderPath:  "Out.png",
				Verify:      true,
				Watch:       true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args, testConfig())
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_DefaultToleranceFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Tolerance = 42

	got, err := Parse([]string{"sky.png"}, cfg)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Tolerance != 42 {
		t.Errorf("Tolerance: got %d, want 42", got.Tolerance)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"tolerance too large", []string{"sky.png", "--tolerance300"}},
		{"tolerance negative", []string{"sky.png", "--tolerance-1"}},
		{"tolerance missing", []string{"sky.png", "--tolerance"}},
		{"tolerance garbage", []string{"sky.png", "--toleranceabc"}},
		{"unknown flag", []string{"sky.png", "--sideways"}},
		{"unknown format", []string{"sky.png", "--format=xml"}},
		{"empty render", []string{"sky.png", "--render="}},
		{"no file", []string{"--horizontal"}},
		{"two files", []string{"a.png", "b.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args, testConfig())
			if !errors.Is(err, gradient.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestParse_HelpAndVersion(t *testing.T) {
	if _, err := Parse([]string{"--help"}, testConfig()); !errors.Is(err, errHelp) {
		t.Errorf("--help: got %v", err)
	}
	if _, err := Parse([]string{"sky.png", "-h"}, testConfig()); !errors.Is(err, errHelp) {
		t.Errorf("-h: got %v", err)
	}
	if _, err := Parse([]string{"--version"}, testConfig()); !errors.Is(err, errVersion) {
		t.Errorf("--version: got %v", err)
	}
}
