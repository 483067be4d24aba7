package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"info", log.InfoLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseLevel(tc.input); got != tc.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestLoggerWritesConsole(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Prefix: "combos", Output: &buf})
	defer l.Close()

	l.Info("move detected", "move", "Fireball")
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "Fireball") {
		t.Errorf("output %q should contain the move", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
}

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combos.log")
	l := New(Options{Level: "debug", File: path, Quiet: true})

	l.Debug("tick", "n", 42)
	if err := l.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick") {
		t.Errorf("log file %q should contain the debug line", data)
	}
}

func TestQuietWithoutFileDiscards(t *testing.T) {
	l := New(Options{Quiet: true})
	l.Error("nowhere")
	if err := l.Close(); err != nil {
		t.Errorf("Close() = %v, expected nil", err)
	}
}
