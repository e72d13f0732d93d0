package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"  Error  ", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		parseLevel(tt.input)
		if level.Level() != tt.want {
			t.Errorf("parseLevel(%q): got %v, want %v", tt.input, level.Level(), tt.want)
		}
	}
}

func TestForTagsComponent(t *testing.T) {
	capture := CaptureForTest()
	defer capture.Restore()

	For("adapters").Debug("persisted payload")

	if !capture.Has(slog.LevelDebug, "persisted payload") {
		t.Fatal("record not captured")
	}
	records := capture.records
	var component string
	records[len(records)-1].Attrs(func(a slog.Attr) bool {
		if a.Key == "component" {
			component = a.Value.String()
			return false
		}
		return true
	})
	if component != "adapters" {
		t.Fatalf("component = %q, want adapters", component)
	}
}

func TestCaptureRestore(t *testing.T) {
	before := slog.Default()
	capture := CaptureForTest()
	capture.Restore()
	if slog.Default() != before {
		t.Fatal("Restore did not reinstate the previous logger")
	}
}
