// Package logging builds the hclog loggers used by the CLI and the picker.
//
// The picker owns the terminal, so it only ever logs to a file. CLI
// commands log to stderr. Both are silent unless a level is configured.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Options selects verbosity and destination.
type Options struct {
	// Level is an hclog level name. Empty and "off" disable logging.
	Level string

	// File, when set, receives log lines in append mode.
	File string

	// Output is used when File is empty. A nil Output disables logging.
	Output io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a named logger and a closer for any file it opened. The
// closer is always non-nil.
func New(name string, opts Options) (hclog.Logger, io.Closer, error) {
	level := hclog.Off
	if opts.Level != "" {
		level = hclog.LevelFromString(opts.Level)
		if level == hclog.NoLevel {
			return nil, nil, fmt.Errorf("logging: unknown level %q", opts.Level)
		}
	}
	if level == hclog.Off {
		return hclog.NewNullLogger(), nopCloser{}, nil
	}

	out := opts.Output
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: failed to create directory for %s: %w", opts.File, err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: failed to open %s: %w", opts.File, err)
		}
		out, closer = f, f
	}
	if out == nil {
		return hclog.NewNullLogger(), nopCloser{}, nil
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: out,
		Color:  hclog.ColorOff,
	})
	return logger, closer, nil
}

// ForPicker is New with the terminal excluded as a destination.
func ForPicker(name, level, file string) (hclog.Logger, io.Closer, error) {
	return New(name, Options{Level: level, File: file})
}

type loggerKey struct{}

// WithContext returns a copy of ctx carrying logger.
func WithContext(ctx context.Context, logger hclog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithContext, or a null logger
// when there is none.
func FromContext(ctx context.Context) hclog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(hclog.Logger); ok {
			return l
		}
	}
	return hclog.NewNullLogger()
}
