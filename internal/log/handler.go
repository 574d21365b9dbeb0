// Package log provides slog handlers.
package log

import (
	"context"
	"log/slog"

	"github.com/treeplant/event-manager/internal/middleware"
)

// ContextHandler adds values from the [context.Context] to the [slog.Record].
// It uses the same attribute keys as the Gin [middleware.RequestLogger] so
// records created by the middleware and by the context aware [slog.Logger]
// methods of the same request can be correlated. Logs written outside of an
// HTTP request have no correlation ID in the context, which is fine.
type ContextHandler struct {
	slog.Handler
}

func New(handler slog.Handler) *ContextHandler {
	return &ContextHandler{
		Handler: handler,
	}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.Handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := middleware.GetCorrelationID(ctx); ok {
		r.AddAttrs(slog.String(middleware.RequestLoggerKeyCorrelationID, id))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return New(h.Handler.WithAttrs(attrs))
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return New(h.Handler.WithGroup(name))
}
