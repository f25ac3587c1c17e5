package app

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler writes every record to each wrapped handler whose level allows it.
// It lets the text handler on stdout run next to the OTLP log bridge.
type teeHandler []slog.Handler

func newTeeHandler(handlers ...slog.Handler) teeHandler {
	return teeHandler(handlers)
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (t teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, h := range t {
		if !h.Enabled(ctx, record.Level) {
			continue
		}

		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t teeHandler) each(fn func(slog.Handler) slog.Handler) teeHandler {
	handlers := make(teeHandler, len(t))
	for i, h := range t {
		handlers[i] = fn(h)
	}

	return handlers
}
