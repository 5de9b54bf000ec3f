// Package cqrs routes commands and queries to single-purpose handlers.
// The HTTP layer builds a command or query value and dispatches it through a
// Bus; each handler delegates to the trip service.
package cqrs

import (
	"context"
	"log/slog"
	"time"
)

// Handler handles one kind of command or query.
type Handler[Req, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc[Req, Res any] func(ctx context.Context, req Req) (Res, error)

// Handle calls f(ctx, req).
func (f HandlerFunc[Req, Res]) Handle(ctx context.Context, req Req) (Res, error) {
	return f(ctx, req)
}

// None is the result of commands that return nothing.
type None struct{}

// logged wraps next so every dispatch is logged at debug level with its name,
// duration and outcome.
func logged[Req, Res any](logger *slog.Logger, name string, next Handler[Req, Res]) Handler[Req, Res] {
	return HandlerFunc[Req, Res](func(ctx context.Context, req Req) (Res, error) {
		start := time.Now()
		res, err := next.Handle(ctx, req)

		attrs := []slog.Attr{
			slog.String("handler", name),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "dispatch", attrs...)
		return res, err
	})
}
