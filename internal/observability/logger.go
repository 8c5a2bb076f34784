package observability

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

// LoggerOptions configures the run logger.
type LoggerOptions struct {
	Level slog.Level
	JSON  bool
	// File is the persistent log file, opened for append. Empty disables it.
	File string
	// Console receives the same records; nil means stderr.
	Console io.Writer
}

// NewLogger builds the logger for one run. The returned close function releases
// the log file and is safe to call when no file was opened.
func NewLogger(opts LoggerOptions) (*slog.Logger, func() error, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	handlers := []slog.Handler{newHandler(console, opts.JSON, handlerOpts)}
	closeFn := func() error { return nil }

	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, closeFn, err
			}
		}
		// #nosec G304 -- log path comes from the operator
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closeFn, err
		}
		handlers = append(handlers, newHandler(f, opts.JSON, handlerOpts))
		closeFn = f.Close
	}

	return slog.New(ContextHandler{Handler: slogmulti.Fanout(handlers...)}), closeFn, nil
}

// NewDiscardLogger returns a logger that drops everything; used when no logger is injected.
func NewDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func newHandler(w io.Writer, asJSON bool, opts *slog.HandlerOptions) slog.Handler {
	if asJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
