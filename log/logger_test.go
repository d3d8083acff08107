package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(zapcore.InfoLevel, &buf)

	logger.Info("resolved artifact", map[string]any{"jar": "lib-1.0.jar"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["message"] != "resolved artifact" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(zapcore.WarnLevel, &buf)

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn level, got %s", buf.String())
	}

	logger.Warn("shown", nil)
	if buf.Len() == 0 {
		t.Fatal("expected warn output")
	}
}

func TestLogger_WithRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(zapcore.InfoLevel, &buf).WithRequest("com.x:lib:1.0")

	logger.Info("cache hit", nil)

	out := buf.String()
	if !strings.Contains(out, `"coordinate":"com.x:lib:1.0"`) {
		t.Errorf("missing coordinate field: %s", out)
	}
	if !strings.Contains(out, `"request_id":"`) {
		t.Errorf("missing request_id field: %s", out)
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	// Must not panic; nothing observable to assert beyond that.
	logger := Nop()
	logger.Error("discarded", map[string]any{"k": "v"})
	logger.Sugar().Infof("discarded %d", 1)
}
