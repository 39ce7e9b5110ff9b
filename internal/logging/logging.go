// Package logging configures slog for the command line: colored console
// output through tint and an optional rotated log file through lumberjack.
package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NoLoggingLevel is above every standard level and disables a handler.
const NoLoggingLevel = slog.Level(100)

type Options struct {
	// ConsoleLevel filters the console. NoLoggingLevel turns it off.
	ConsoleLevel slog.Level
	// Console defaults to os.Stderr so that command output stays clean.
	Console io.Writer
	NoColor bool

	// FilePath enables a rotated log file when set.
	FilePath   string
	FileLevel  slog.Level
	MaxSizeMB  int
	MaxBackups int
}

// Setup builds the logger described by opts and installs it as the slog
// default. The returned closer flushes and closes the log file.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	handler := &MultiLevelHandler{}
	var closer io.Closer = nopCloser{}

	if opts.ConsoleLevel != NoLoggingLevel {
		w := opts.Console
		if w == nil {
			w = os.Stderr
		}
		handler.consoleHandler = tint.NewHandler(w, &tint.Options{
			Level:      opts.ConsoleLevel,
			TimeFormat: time.Kitchen,
			NoColor:    opts.NoColor,
		})
	}

	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log folder: %w", err)
		}
		lumber := &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			Compress:   true,
		}
		handler.fileHandler = tint.NewHandler(lumber, &tint.Options{
			Level:      opts.FileLevel,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
		closer = lumber
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// overwrite standard log so it's always redirected to slog, in case some deep dep is using it
	lw := &slogWriter{}
	log.Default().SetOutput(lw)
	log.SetOutput(lw)

	return logger, closer, nil
}

// ParseLevel accepts debug, info, warn, error or off.
func ParseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(strings.TrimSpace(s), "off") {
		return NoLoggingLevel, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: want debug, info, warn, error or off", s)
	}
	return l, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// MultiLevelHandler fans records out to a console and a file handler, each
// filtering on its own level. Either may be nil.
type MultiLevelHandler struct {
	consoleHandler slog.Handler
	fileHandler    slog.Handler
}

func (h *MultiLevelHandler) handlers() []slog.Handler {
	var out []slog.Handler
	if h.consoleHandler != nil {
		out = append(out, h.consoleHandler)
	}
	if h.fileHandler != nil {
		out = append(out, h.fileHandler)
	}
	return out
}

func (h *MultiLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h.handlers() {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *MultiLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, hh := range h.handlers() {
		if !hh.Enabled(ctx, r.Level) {
			continue
		}
		if err := hh.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *MultiLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := &MultiLevelHandler{}
	if h.consoleHandler != nil {
		n.consoleHandler = h.consoleHandler.WithAttrs(attrs)
	}
	if h.fileHandler != nil {
		n.fileHandler = h.fileHandler.WithAttrs(attrs)
	}
	return n
}

func (h *MultiLevelHandler) WithGroup(name string) slog.Handler {
	n := &MultiLevelHandler{}
	if h.consoleHandler != nil {
		n.consoleHandler = h.consoleHandler.WithGroup(name)
	}
	if h.fileHandler != nil {
		n.fileHandler = h.fileHandler.WithGroup(name)
	}
	return n
}

// slogWriter forwards the standard logger into slog, picking the level from
// the message prefix.
type slogWriter struct{}

func (w *slogWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimRight(string(p), "\n")
	for _, l := range []struct {
		prefix string
		level  slog.Level
	}{
		{"ERROR", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"INFO", slog.LevelInfo},
	} {
		if rest, ok := strings.CutPrefix(msg, l.prefix); ok {
			slog.Log(context.Background(), l.level, strings.TrimLeft(rest, ": "))
			return len(p), nil
		}
	}
	slog.Debug(msg)
	return len(p), nil
}
