package logging

import (
	"context"
	"errors"
	"log/slog"
)

// Tee combines handlers into one: the stdout JSON handler plus the
// database sink, each filtering by its own level. Every handler that is
// enabled for a record gets it; sink failures are joined, not short-circuited,
// so a database hiccup never drops the stdout line.
func Tee(sinks ...slog.Handler) slog.Handler {
	return teeHandler{sinks: sinks}
}

type teeHandler struct {
	sinks []slog.Handler
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range t.sinks {
		if s.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, s := range t.sinks {
		if !s.Enabled(ctx, record.Level) {
			continue
		}
		if err := s.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sinks := make([]slog.Handler, len(t.sinks))
	for i, s := range t.sinks {
		sinks[i] = s.WithAttrs(attrs)
	}
	return teeHandler{sinks: sinks}
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	sinks := make([]slog.Handler, len(t.sinks))
	for i, s := range t.sinks {
		sinks[i] = s.WithGroup(name)
	}
	return teeHandler{sinks: sinks}
}
