package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "verbose logs debug", verbose: true, wantDebug: true},
		{name: "quiet drops debug", verbose: false, wantDebug: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)

			logger.Debug("debug message", "categories", 7)
			logger.Warn("warn message")

			output := buf.String()
			if got := strings.Contains(output, "debug message"); got != tt.wantDebug {
				t.Errorf("debug present = %v, want %v: %s", got, tt.wantDebug, output)
			}
			if !strings.Contains(output, "warn message") {
				t.Errorf("expected warn message in output: %s", output)
			}
		})
	}
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, true)
	logger.Info("rendered", "total", 47)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "rendered" {
		t.Errorf("expected msg %q, got %v", "rendered", record["msg"])
	}
	if record["total"] != float64(47) {
		t.Errorf("expected total 47, got %v", record["total"])
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := Discard()
	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if logger.Enabled(context.Background(), lvl) {
			t.Errorf("expected level %s to be disabled", lvl)
		}
	}
}
