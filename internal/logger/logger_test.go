package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			for _, format := range []string{"json", "console"} {
				log, err := New(tt.level, format)
				if err != nil {
					t.Fatalf("New(%q, %q) error = %v", tt.level, format, err)
				}
				if got := log.Level(); got != tt.want {
					t.Errorf("New(%q, %q).Level() = %v, want %v", tt.level, format, got, tt.want)
				}
			}
		})
	}
}
