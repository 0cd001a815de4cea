// Package logging wires the demo logger: a console sink plus a file sink
// under a logs directory that rotates to a new dated file each day.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// Options controls Setup. Zero values fall back to the defaults carried by
// the config package (info level, "logs" dir, daily rotation).
type Options struct {
	Level    string
	Dir      string
	Rotation string

	// ConsoleOut overrides the console sink destination (tests).
	ConsoleOut io.Writer
	// Now overrides the rotation clock (tests).
	Now func() time.Time
}

// Logger fans log records out to the console and the dated file.
type Logger struct {
	console *clog.Logger
	file    *clog.Logger
	w       *dailyWriter
}

// Setup builds the two-sink logger. The console sink prints level and
// message only; the file sink adds timestamps. The logs directory is
// created when absent; failure to create it is returned to the caller.
func Setup(opts Options) (*Logger, error) {
	level := clog.InfoLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		parsed, err := clog.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", s, err)
		}
		level = parsed
	}

	dir := opts.Dir
	if strings.TrimSpace(dir) == "" {
		dir = "logs"
	}
	if r := strings.TrimSpace(opts.Rotation); r != "" && r != "daily" {
		clog.Warn("unsupported rotation interval, using daily", "rotation", r)
	}

	w, err := newDailyWriter(dir, opts.Now)
	if err != nil {
		return nil, err
	}

	consoleOut := opts.ConsoleOut
	if consoleOut == nil {
		consoleOut = os.Stderr
	}
	console := clog.NewWithOptions(consoleOut, clog.Options{
		Level: level,
	})
	file := clog.NewWithOptions(w, clog.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "app",
		Formatter:       clog.TextFormatter,
	})

	return &Logger{console: console, file: file, w: w}, nil
}

// Filename returns the path of the active log file.
func (l *Logger) Filename() string { return l.w.Filename() }

// Close releases the file sink.
func (l *Logger) Close() error { return l.w.Close() }

func (l *Logger) Debug(msg string, keyvals ...any) {
	l.console.Debug(msg, keyvals...)
	l.file.Debug(msg, keyvals...)
}

func (l *Logger) Info(msg string, keyvals ...any) {
	l.console.Info(msg, keyvals...)
	l.file.Info(msg, keyvals...)
}

func (l *Logger) Warn(msg string, keyvals ...any) {
	l.console.Warn(msg, keyvals...)
	l.file.Warn(msg, keyvals...)
}

func (l *Logger) Error(msg string, keyvals ...any) {
	l.console.Error(msg, keyvals...)
	l.file.Error(msg, keyvals...)
}
