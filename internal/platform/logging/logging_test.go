package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithWriter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Options{Format: "json", Level: "warn"})

	logger.Info("hidden")
	logger.Warn("shown", slog.Int("count", 2))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the warn line, got %d lines: %q", len(lines), buf.String())
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &payload); err != nil {
		t.Fatalf("expected json output: %v", err)
	}
	if payload["msg"] != "shown" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	if ParseLevel("DEBUG") != slog.LevelDebug {
		t.Error("expected debug level")
	}
	if ParseLevel("error") != slog.LevelError {
		t.Error("expected error level")
	}
	if ParseLevel("whatever") != slog.LevelInfo {
		t.Error("expected info as default")
	}
}
