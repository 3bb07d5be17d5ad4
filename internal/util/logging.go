// Package util provides common utilities including logging helpers,
// file system paths and small numeric helpers.
package util

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// SetupLogging builds a logger writing to w. format "terminal" selects the
// human readable console writer; anything else writes JSON lines.
func SetupLogging(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	o := w
	if format == "terminal" {
		o = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	z := zerolog.New(o).With().Timestamp()
	if lvl <= zerolog.DebugLevel {
		z = z.Caller()
	}
	return z.Logger().Level(lvl), nil
}

// ParseLogLevel accepts zerolog level names case-insensitively. Empty means info.
func ParseLogLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "unknown log level, %q", level)
	}
	return lvl, nil
}

// LogOutput opens f for appending, creating parent directories.
func LogOutput(f string) (*os.File, error) {
	path := filepath.Clean(f)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create log directory, %q", path)
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) // nolint:gosec
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file, %q", path)
	}
	return out, nil
}

// Module returns a child logger tagged with the module name.
func Module(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("module", name).Logger()
}
