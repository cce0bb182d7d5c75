// Package logging builds the slog loggers used by the command line and the
// API server.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// ErrorFile, when set, receives every record at warn level or above.
	ErrorFile string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New constructs a logger and returns a function that closes the error file.
func New(opts Options) (*slog.Logger, func() error, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	level := parseLevel(opts.Level)
	console, err := newHandler(opts.Format, out, level)
	if err != nil {
		return nil, nil, err
	}

	if strings.TrimSpace(opts.ErrorFile) == "" {
		return slog.New(console), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.ErrorFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("ensure log directory: %w", err)
	}
	f, err := os.OpenFile(opts.ErrorFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open error log: %w", err)
	}
	file, err := newHandler(opts.Format, f, slog.LevelWarn)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	return slog.New(fanout{console, file}), f.Close, nil
}

func newHandler(format string, w io.Writer, level slog.Level) (slog.Handler, error) {
	ho := &slog.HandlerOptions{Level: level, AddSource: level <= slog.LevelDebug}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text", "console":
		return slog.NewTextHandler(w, ho), nil
	case "json":
		return slog.NewJSONHandler(w, ho), nil
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", format)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "critical":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout sends each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
