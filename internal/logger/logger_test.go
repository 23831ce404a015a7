package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)
	defer slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	Info("day advanced", "day", 3, "items", 9)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}
	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}
	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}
	if logEntry["msg"] != "day advanced" {
		t.Errorf("Expected msg='day advanced', got %v", logEntry["msg"])
	}
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}
	if logEntry["day"] != float64(3) {
		t.Errorf("Expected day=3, got %v", logEntry["day"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	config := DefaultConfig()
	config.Level = "warn"
	log := New(config, &buf)

	log.Info("should be dropped")
	log.Warn("should be kept")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Errorf("Expected info message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "should be kept") {
		t.Errorf("Expected warn message in output, got %q", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	requestID := GetRequestID(ctx)
	if requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}

	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Error("Expected no request ID on empty context")
	}

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)
	defer slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	FromContext(ctx).Info("traced")
	if !strings.Contains(buf.String(), `"request_id":"test-req-123"`) {
		t.Errorf("Expected request_id attribute in %q", buf.String())
	}
}

func TestGenerateRequestID(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()

	if a == "" || a == b {
		t.Errorf("Expected distinct non-empty request IDs, got %q and %q", a, b)
	}
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()

	if config.ServiceName != DefaultServiceName {
		t.Errorf("Expected service name %s, got %s", DefaultServiceName, config.ServiceName)
	}
	if config.Level == "" {
		t.Error("Expected non-empty log level")
	}
	if config.Format == "" {
		t.Error("Expected non-empty format")
	}
}

func TestForEnvironment(t *testing.T) {
	tests := []struct {
		environment string
		wantSource  bool
	}{
		{"dev", true},
		{"Development", true},
		{"prod", false},
		{"staging", false},
	}

	for _, tt := range tests {
		config := ForEnvironment("info", "json", "gildedrose", "1.2.3", tt.environment)
		if config.AddSource != tt.wantSource {
			t.Errorf("ForEnvironment(%q).AddSource = %v, want %v", tt.environment, config.AddSource, tt.wantSource)
		}
		if config.Environment != tt.environment {
			t.Errorf("Expected environment %q, got %q", tt.environment, config.Environment)
		}
	}
}

func TestFromContextJob(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)
	t.Cleanup(func() { InitLoggerWithWriter(DefaultConfig(), io.Discard) })

	ctx := WithJob(WithRequestID(context.Background(), "req-1"), "day_tick")
	FromContext(ctx).Info("tick")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log output: %v", err)
	}
	if entry[AttrKeyJob] != "day_tick" {
		t.Errorf("Expected job attribute, got %v", entry[AttrKeyJob])
	}
	if entry[AttrKeyRequestID] != "req-1" {
		t.Errorf("Expected request_id attribute, got %v", entry[AttrKeyRequestID])
	}
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}

	for level, want := range tests {
		if got := (Config{Level: level}).LogLevel(); got != want {
			t.Errorf("LogLevel(%q) = %v, want %v", level, got, want)
		}
	}
}
