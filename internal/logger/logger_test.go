package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"Warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewSlogHonorsLevel(t *testing.T) {
	log := NewSlog(SlogConfig{Level: "warn", Format: "text"})

	ctx := context.Background()
	if log.Enabled(ctx, slog.LevelInfo) {
		t.Error("info records must be suppressed at warn level")
	}
	if !log.Enabled(ctx, slog.LevelWarn) {
		t.Error("warn records must pass at warn level")
	}
}
