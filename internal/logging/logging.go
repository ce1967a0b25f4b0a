// Package logging builds the charmbracelet/log loggers used across the arcade.
//
// A TUI owns the terminal while it runs, so interactive commands either log
// to a file or hold warnings back until the UI has exited.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Prefix string
	Debug  bool
}

// New creates a timestamped logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "arcade"
	}
	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops every message.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// heldWriter buffers log output until Close copies it to out.
type heldWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
	out io.Writer
}

func (h *heldWriter) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.Write(p)
}

// Close flushes everything written so far. It may be called more than once.
func (h *heldWriter) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.buf.WriteTo(h.out)
	return err
}

// Open returns a logger for an interactive session. With an empty path the
// logger keeps warnings and errors in memory and writes them to stderr when
// the closer is closed, after the UI has released the terminal. Otherwise it
// appends to the file at path, creating parent directories as needed.
// The returned closer must be closed when the session ends.
func Open(path string, debug bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return openHeld(os.Stderr)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return New(f, Options{Debug: debug}), f, nil
}

func openHeld(out io.Writer) (*log.Logger, io.Closer, error) {
	w := &heldWriter{out: out}
	logger := New(w, Options{})
	logger.SetLevel(log.WarnLevel)
	return logger, w, nil
}
