// Package logger
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"loginflow/internal/config"
)

// Logger is the sink handlers write diagnostics to. *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

func New(cfg *config.Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

func NewWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func Nop() Logger {
	return slog.New(slog.DiscardHandler)
}

// Safe wraps a sink so that a panicking or nil sink cannot disturb the caller.
func Safe(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	if s, ok := l.(safe); ok {
		return s
	}
	return safe{next: l}
}

type safe struct {
	next Logger
}

func (s safe) Info(msg string, args ...any) {
	defer func() { _ = recover() }()
	s.next.Info(msg, args...)
}

func (s safe) Error(msg string, args ...any) {
	defer func() { _ = recover() }()
	s.next.Error(msg, args...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
