package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure_Levels(t *testing.T) {
	defer Configure("warn", "text")

	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"bogus", logrus.WarnLevel},
		{"", logrus.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			Configure(tt.in, "text")
			if got := Logger.GetLevel(); got != tt.want {
				t.Errorf("level: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer Configure("warn", "text")

	Configure("info", "json")
	WithField("path", "sky.png").Info("loaded")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["path"] != "sky.png" {
		t.Errorf("path field: got %v", entry["path"])
	}
	if entry["msg"] != "loaded" {
		t.Errorf("msg field: got %v", entry["msg"])
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer Configure("warn", "text")

	Configure("warn", "text")
	WithError(os.ErrNotExist).Warn("open failed")
	WithFields(logrus.Fields{"a": 1}).Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "open failed") || !strings.Contains(out, "file does not exist") {
		t.Errorf("unexpected output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry should be filtered at warn level: %q", out)
	}
}
