package navigator

import (
	"context"
	"log/slog"
	"time"

	"github.com/vitalvas/navi/urlmatch"
)

// MiddlewareFunc receives a Handler and returns another Handler. It can be
// used to wrap handlers with additional behavior such as logging or
// access checks.
type MiddlewareFunc func(Handler) Handler

// Middleware allows MiddlewareFunc to implement the Middleware interface.
func (mw MiddlewareFunc) Middleware(handler Handler) Handler {
	return mw(handler)
}

// LoggingMiddleware logs every dispatched URL with its pattern and result.
func LoggingMiddleware(logger *slog.Logger) MiddlewareFunc {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, loc urlmatch.Location) bool {
			start := time.Now()
			handled := next.Open(ctx, loc)
			pattern, _ := Pattern(ctx)
			logger.LogAttrs(ctx, slog.LevelInfo, "navigator: open",
				slog.String("url", loc.String()),
				slog.String("pattern", pattern),
				slog.Bool("handled", handled),
				slog.Duration("duration", time.Since(start)),
			)
			return handled
		})
	}
}
