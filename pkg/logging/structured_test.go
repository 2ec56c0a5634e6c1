package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewStructuredLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	}

	logger := NewStructuredLogger(cfg)
	logger.Info("test message", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if entry["msg"] != "test message" {
		t.Errorf("expected msg 'test message', got %v", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("expected key 'value', got %v", entry["key"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Error("expected ts field")
	}
}

func TestNewStructuredLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(Config{Level: slog.LevelDebug, Format: FormatText, Output: &buf})
	logger.Debug("fetching profile", "url", "https://github.com/octocat")

	got := buf.String()
	if !strings.Contains(got, "msg=\"fetching profile\"") {
		t.Errorf("expected text record, got %q", got)
	}
	if !strings.Contains(got, "url=https://github.com/octocat") {
		t.Errorf("expected url attribute, got %q", got)
	}
}

func TestNewStructuredLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(Config{Level: slog.LevelInfo, Output: &buf})
	logger.Debug("hidden")

	if buf.Len() != 0 {
		t.Errorf("debug record should be filtered at INFO, got %q", buf.String())
	}
}

func TestNewStructuredLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:     slog.LevelInfo,
		Format:    FormatJSON,
		Output:    &buf,
		Component: "fetch",
	}

	logger := NewStructuredLogger(cfg)
	logger.Info("test message")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if entry["component"] != "fetch" {
		t.Errorf("expected component 'fetch', got %v", entry["component"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	for _, l := range []string{"debug", "INFO", "warn", "warning", "error"} {
		if !ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = false", l)
		}
	}
	for _, l := range []string{"", "trace", "verbose"} {
		if ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = true", l)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected LogFormat
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"unknown", FormatText}, // defaults to text
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseFormat(tt.input)
			if result != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(Config{Format: FormatJSON, Output: &buf})

	logger, id := WithRunID(logger)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("run id %q is not a UUID: %v", id, err)
	}
	logger.Info("test message")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if entry["run_id"] != id {
		t.Errorf("expected run_id %q, got %v", id, entry["run_id"])
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(Config{Format: FormatJSON, Output: &buf})
	logger = WithComponent(logger, "present")
	logger.Info("test message")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if entry["component"] != "present" {
		t.Errorf("expected component 'present', got %v", entry["component"])
	}
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gitfetch.log")
	w := NewFileWriter(path)

	logger := NewStructuredLogger(Config{Format: FormatJSON, Output: w})
	logger.Info("written to file")
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file missing record: %q", data)
	}
}

func TestDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger should not be enabled at any level")
	}
	logger.Error("nothing happens")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != slog.LevelInfo {
		t.Errorf("expected default level INFO, got %v", cfg.Level)
	}
	if cfg.Format != FormatText {
		t.Errorf("expected default format text, got %v", cfg.Format)
	}
	if cfg.Output != os.Stderr {
		t.Error("expected default output stderr")
	}
}
