// Package logger implements the logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	output io.Writer
}

// New creates a logger writing pretty output to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
		output: os.Stderr,
	}
}

// SetOutput redirects the logger. Used by tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(NewPrettyHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. zerr chains are rendered hierarchically with
// their metadata, standard errors fall back to Error().
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if err == nil {
		return
	}
	l.logger.Error(render(err))
}

// render flattens an error chain into an indented report.
func render(err error) string {
	var lines []string
	for current := err; current != nil; current = errors.Unwrap(current) {
		line := messageOf(current)
		if line == "" {
			continue
		}
		if len(lines) == 0 {
			lines = append(lines, line)
		} else {
			lines = append(lines, "  caused by: "+line)
		}
	}
	return strings.Join(lines, "\n")
}

// messageOf returns the error's own message plus zerr metadata,
// without repeating the rest of the chain.
func messageOf(err error) string {
	zErr, ok := err.(*zerr.Error)
	if !ok {
		return err.Error()
	}

	msg := zErr.Error()
	if wrapped := errors.Unwrap(err); wrapped != nil {
		msg = strings.TrimSuffix(strings.TrimSuffix(msg, wrapped.Error()), ": ")
	}

	meta := zErr.Metadata()
	if len(meta) == 0 {
		return msg
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return msg + " (" + strings.Join(parts, " ") + ")"
}
