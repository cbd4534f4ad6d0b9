// Package logger is the process-wide printf-style logger backed by logrus.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is an alias so callers don't import logrus directly.
type Fields = logrus.Fields

var (
	mu   sync.Mutex
	std  = newDefault()
	file *os.File
)

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// InitLog configures the global logger. It may be called more than once;
// a previously opened log file is closed.
func InitLog(opts *Options) error {
	if opts == nil {
		opts = NewOptions()
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	var out io.Writer = os.Stderr
	var f *os.File
	if opts.Output != "" && opts.Output != OutputStderr {
		if dir := filepath.Dir(opts.Output); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create log dir %q: %w", dir, err)
			}
		}
		f, err = os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file %q: %w", opts.Output, err)
		}
		out = f
	}

	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		_ = file.Close()
	}
	file = f

	std.SetOutput(out)
	std.SetLevel(level)
	if strings.EqualFold(opts.Format, FormatJSON) {
		std.SetFormatter(&logrus.JSONFormatter{})
	} else {
		std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: f != nil})
	}
	return nil
}

// FlushLog syncs and closes the log file, if any.
func FlushLog() {
	mu.Lock()
	defer mu.Unlock()

	if file == nil {
		return
	}
	_ = file.Sync()
	_ = file.Close()
	file = nil
	std.SetOutput(os.Stderr)
}

// Writer returns a writer that logs each line at error level.
func Writer() *io.PipeWriter {
	return std.WriterLevel(logrus.ErrorLevel)
}

// WithFields returns an entry carrying the given structured fields.
func WithFields(fields Fields) *logrus.Entry {
	return std.WithFields(fields)
}

func Debug(format string, args ...any) {
	std.Debugf(format, args...)
}

func Info(format string, args ...any) {
	std.Infof(format, args...)
}

func Warn(format string, args ...any) {
	std.Warnf(format, args...)
}

func Error(format string, args ...any) {
	std.Errorf(format, args...)
}
