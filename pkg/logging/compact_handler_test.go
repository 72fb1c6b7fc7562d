package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestCompactLine(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewCompactHandler(&buf, nil))
	l.Info("conversion complete", "faces", 6, "closed", true)

	line := buf.String()
	if !strings.HasPrefix(line, "[INFO]  ") {
		t.Errorf("line %q should start with the INFO tag", line)
	}
	if !strings.Contains(line, "conversion complete | faces=6 closed=true") {
		t.Errorf("unexpected line %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("line should end with a newline")
	}
}

func TestCompactShortensNoisyKeys(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewCompactHandler(&buf, nil))
	l.Info("request completed",
		"requestID", "4422bf2e-94a6-4b15-9b77-2b3f43d88f3f",
		"scene", "/tmp/scenes/cube.json",
		"durationMs", int64(12))

	line := buf.String()
	if !strings.Contains(line, "req=4422bf2e") {
		t.Errorf("request ID not shortened: %q", line)
	}
	if !strings.Contains(line, "scene=cube.json") {
		t.Errorf("scene path not shortened: %q", line)
	}
	if !strings.Contains(line, "duration=12ms") {
		t.Errorf("duration not suffixed: %q", line)
	}
}

func TestCompactQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewCompactHandler(&buf, nil))
	l.Warn("conversion failed", "error", "unsupported input: *float64")

	if !strings.Contains(buf.String(), `error="unsupported input: *float64"`) {
		t.Errorf("value with spaces should be quoted: %q", buf.String())
	}
}

func TestCompactLevelGate(t *testing.T) {
	var buf bytes.Buffer
	h := NewCompactHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	slog.New(h).Info("below threshold")

	if buf.Len() != 0 {
		t.Errorf("INFO should be filtered at WARN level, got %q", buf.String())
	}
}

func TestCompactWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewCompactHandler(&buf, nil)).With("scene", "ring.json")
	l.Info("converting")

	if !strings.Contains(buf.String(), "converting | scene=ring.json") {
		t.Errorf("bound attrs not rendered: %q", buf.String())
	}
}
