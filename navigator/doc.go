// Package navigator dispatches URLs to handlers registered by pattern.
//
// Patterns use the urlmatch template syntax. They are tried in registration
// order and the first match wins; registering the same pattern again
// replaces its handler without changing its position.
//
//	nav := navigator.New()
//	nav.HandleFunc("myapp://user/<int:id>", func(ctx context.Context, loc urlmatch.Location) bool {
//		id, _ := navigator.Values(ctx).Int("id")
//		return showUser(id)
//	})
//	nav.Open(context.Background(), urlmatch.FromString("myapp://user/42"))
//
// # Middleware
//
// Middleware wraps matched handlers, outermost first:
//
//	nav.Use(navigator.LoggingMiddleware(logger))
//
// Handlers read the match through Values and Pattern on the context they
// receive.
package navigator
