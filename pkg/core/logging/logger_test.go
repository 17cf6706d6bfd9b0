package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/sro/foundation/core/log"
)

func TestLevel_Constants(t *testing.T) {
	if LevelDebug != 0 {
		t.Errorf("LevelDebug = %d, want 0", LevelDebug)
	}
	if LevelInfo != 1 {
		t.Errorf("LevelInfo = %d, want 1", LevelInfo)
	}
	if LevelWarn != 2 {
		t.Errorf("LevelWarn = %d, want 2", LevelWarn)
	}
	if LevelError != 3 {
		t.Errorf("LevelError = %d, want 3", LevelError)
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger := New("test-service")

	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if logger.name != "test-service" {
		t.Errorf("name = %v, want test-service", logger.name)
	}
}

func TestLogger_WithLevel(t *testing.T) {
	logger := New("test")
	result := logger.WithLevel(LevelDebug)

	if result == nil {
		t.Error("WithLevel should return a logger")
	}
	if result.name != "test" {
		t.Errorf("name should be preserved: got %v", result.name)
	}
}

func newBuffered(level string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return FromConfig(LoggerConfig{ServiceName: "test", Level: level, Format: "json", Output: &buf}), &buf
}

func TestLogger_KeyValues(t *testing.T) {
	logger, buf := newBuffered("debug")

	logger.Info("record validated", "entity", "documento", "violations", 2, "orphan")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if data["entity"] != "documento" || data["violations"] != float64(2) {
		t.Errorf("unexpected fields: %v", data)
	}
	if _, ok := data["orphan"]; ok {
		t.Error("trailing key without value should be dropped")
	}
}

func TestLogger_With(t *testing.T) {
	logger, buf := newBuffered("info")

	logger.With("component", "intake").WithRequestID("req-9").Warn("slow batch")

	out := buf.String()
	for _, want := range []string{`"component":"intake"`, `"request_id":"req-9"`, `"level":"warn"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %s", out, want)
		}
	}
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level   string
		debugOn bool
		infoOn  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warning", false, false},
		{"invalid", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Level: tt.level, Output: &bytes.Buffer{}})
			if got := logger.IsLevelEnabled(mdwlog.LevelDebug); got != tt.debugOn {
				t.Errorf("debug enabled = %v, want %v", got, tt.debugOn)
			}
			if got := logger.IsLevelEnabled(mdwlog.LevelInfo); got != tt.infoOn {
				t.Errorf("info enabled = %v, want %v", got, tt.infoOn)
			}
		})
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{Format: "text", Output: &primary, AdditionalOutputs: []io.Writer{&extra}})

	logger.Info("hello")

	if primary.String() == "" || primary.String() != extra.String() {
		t.Errorf("outputs differ: %q vs %q", primary.String(), extra.String())
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error("nothing", "key", "value")
	if logger.Name() != "nop" {
		t.Errorf("Name() = %v", logger.Name())
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("my-service")

	if cfg.ServiceName != "my-service" {
		t.Errorf("ServiceName = %v, want my-service", cfg.ServiceName)
	}
	if cfg.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %v, want json", cfg.Format)
	}
}

func TestNewSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger("test-service")

	if logger == nil {
		t.Fatal("NewSimpleLogger() returned nil")
	}
}

func TestNewLogger(t *testing.T) {
	cfg := LoggerConfig{
		ServiceName: "test-service",
		Level:       "debug",
		Format:      "json",
	}

	logger := NewLogger(cfg)

	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
}

func TestToFields(t *testing.T) {
	fields := toFields("key1", "value1", "key2", 42)
	if fields["key1"] != "value1" {
		t.Errorf("fields[key1] = %v, want value1", fields["key1"])
	}
	if fields["key2"] != 42 {
		t.Errorf("fields[key2] = %v, want 42", fields["key2"])
	}

	// Non-string key is skipped
	fields = toFields(123, "value")
	if len(fields) != 0 {
		t.Errorf("Non-string key should be skipped, got %v fields", len(fields))
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := Nop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", "iteration", i)
	}
}
