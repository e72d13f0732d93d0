// Package logging is the store's slog setup: one process-wide level, text or
// JSON output, and loggers tagged by component. The store keeps its own
// records at debug level; anything that goes wrong is returned to the caller
// rather than written here.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

var level = new(slog.LevelVar)

// Init installs the global slog handler and is meant to run once, from main.
// levelStr accepts "debug", "info", "warn" or "error" and falls back to
// "info"; format selects "text" (default) or "json" output on stderr.
func Init(levelStr, format string) {
	parseLevel(levelStr)

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// For returns a logger that stamps every record with the given component
// name ("papyr", "adapters"). Resolution of the backing handler happens per
// call, not at construction, so a logger stored in a package-level var still
// honors an Init or CaptureForTest that runs afterwards.
func For(component string) *slog.Logger {
	return slog.New(&componentHandler{component: component})
}

// SetLevel changes the log level at runtime.
func SetLevel(l slog.Level) {
	level.Set(l)
}

func parseLevel(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelInfo)
	}
}

// componentHandler adds the "component" attribute and hands the record to
// whatever slog.Default().Handler() is at call time.
type componentHandler struct {
	component string
}

func (h *componentHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return slog.Default().Handler().Enabled(ctx, l)
}

func (h *componentHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(slog.String("component", h.component))
	return slog.Default().Handler().Handle(ctx, r)
}

func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *componentHandler) WithGroup(name string) slog.Handler {
	return h
}
