// Package logging builds the charmbracelet loggers used across the combos
// binaries, optionally teeing output into a rotating log file.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a logger.
type Options struct {
	Prefix string
	Level  string // debug, info, warn, error

	// File, when set, receives log output through a rotating writer.
	File string

	// Output overrides the console writer (defaults to stderr).
	Output io.Writer

	// Quiet drops console output, leaving only File. The TUI uses this so
	// log lines do not tear the alt screen.
	Quiet bool
}

// Logger wraps a charmbracelet logger together with its rotating sink.
type Logger struct {
	*log.Logger
	sink *lumberjack.Logger
}

// New creates a logger from opts.
func New(opts Options) *Logger {
	var writers []io.Writer
	if !opts.Quiet {
		out := opts.Output
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, out)
	}

	var sink *lumberjack.Logger
	if opts.File != "" {
		sink = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		writers = append(writers, sink)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           ParseLevel(opts.Level),
	})
	return &Logger{Logger: logger, sink: sink}
}

// Close flushes and closes the rotating file, if any.
func (l *Logger) Close() error {
	if l == nil || l.sink == nil {
		return nil
	}
	return l.sink.Close()
}

// ParseLevel maps a level name to a log.Level, defaulting to info.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
