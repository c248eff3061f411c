package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/jelou/internal/config"
	"github.com/heartmarshall/jelou/pkg/ctxutil"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	cfg := config.LogConfig{Level: "info", Format: "json"}
	logger := NewLogger(cfg)

	if logger == nil {
		t.Fatal("logger should not be nil")
	}
	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" Warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(newHandler(config.LogConfig{Level: tt.level, Format: "text"}, &buf))

			logger.Log(context.TODO(), tt.wantSlog, "should appear")
			if buf.Len() == 0 {
				t.Errorf("expected log output at level %v", tt.wantSlog)
			}

			buf.Reset()
			belowLevel := tt.wantSlog - 1
			logger.Log(context.TODO(), belowLevel, "should be suppressed")
			if buf.Len() != 0 {
				t.Errorf("level %v should suppress level %v, but got output: %s",
					tt.wantSlog, belowLevel, buf.String())
			}
		})
	}
}

func TestNewLogger_TextAddSource_JSONNoSource(t *testing.T) {
	var textBuf, jsonBuf bytes.Buffer

	slog.New(newHandler(config.LogConfig{Level: "info", Format: "text"}, &textBuf)).Info("hello")
	slog.New(newHandler(config.LogConfig{Level: "info", Format: "JSON"}, &jsonBuf)).Info("hello")

	if !strings.Contains(textBuf.String(), "source=") {
		t.Error("text format should include source")
	}

	var m map[string]any
	if err := json.Unmarshal(jsonBuf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := m["source"]; ok {
		t.Error("json format should not include source")
	}
}

func TestNewLogger_ContextIdentifiers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(config.LogConfig{Level: "info", Format: "json"}, &buf)).
		With("service", "pronounce")

	batchID := uuid.New()
	ctx := ctxutil.WithRequestID(context.Background(), "req-7")
	ctx = ctxutil.WithBatchID(ctx, batchID)
	logger.InfoContext(ctx, "batch done")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["request_id"] != "req-7" {
		t.Errorf("request_id = %v, want req-7", m["request_id"])
	}
	if m["batch_id"] != batchID.String() {
		t.Errorf("batch_id = %v, want %s", m["batch_id"], batchID)
	}
	if m["service"] != "pronounce" {
		t.Errorf("service attr lost through WithAttrs: %v", m["service"])
	}
}

func TestNewLogger_NoContextIdentifiers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(config.LogConfig{Level: "info", Format: "json"}, &buf))

	logger.Info("plain")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := m["request_id"]; ok {
		t.Error("request_id should be absent without a context value")
	}
}
