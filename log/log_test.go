package log

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name     string
		logFn    func(v ...any)
		expected string
	}{
		{name: "debug", logFn: Debug, expected: "[DEBUG] loaded lib.star"},
		{name: "info", logFn: Info, expected: "[INFO] loaded lib.star"},
		{name: "warn", logFn: Warn, expected: "[WARN] loaded lib.star"},
		{name: "fatal", logFn: Fatal, expected: "[FATAL] loaded lib.star"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			defer SetOutput(io.Discard)

			tt.logFn("loaded", "lib.star")

			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("expected %q in output, got %q", tt.expected, buf.String())
			}
		})
	}
}
