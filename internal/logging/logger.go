package logging

import (
	"io"
	"log/slog"
	"os"
)

// Option configures New.
type Option func(*options)

type options struct {
	w    io.Writer
	json bool
}

// WithWriter redirects output (default: Stderr).
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.w = w
	}
}

// WithJSON switches to the JSON handler, for servers whose logs are shipped.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// New creates a configured application logger.
// It writes to Stderr so Stdout stays free for the table UI and JSON-RPC.
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level, opts ...Option) *slog.Logger {
	o := options{w: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	hopts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}
	if o.json {
		return slog.New(slog.NewJSONHandler(o.w, hopts))
	}
	return slog.New(slog.NewTextHandler(o.w, hopts))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LevelFor maps the --debug flag to a level; servers log at Info otherwise.
func LevelFor(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
