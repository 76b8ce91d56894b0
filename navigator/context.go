package navigator

import (
	"context"

	"github.com/vitalvas/navi/urlmatch"
)

// matchContextKey is an unexported type for the single context key.
type matchContextKey struct{}

// ctxKey is the single context key used to store the match.
var ctxKey = matchContextKey{}

// Values returns the placeholder values of the current match, if any.
func Values(ctx context.Context) urlmatch.Values {
	if res, ok := ctx.Value(ctxKey).(*urlmatch.Result); ok {
		return res.Values
	}
	return nil
}

// Pattern returns the pattern of the current match and whether one exists.
func Pattern(ctx context.Context) (string, bool) {
	if res, ok := ctx.Value(ctxKey).(*urlmatch.Result); ok {
		return res.Pattern, true
	}
	return "", false
}

// WithResult returns a copy of ctx carrying res. This is intended for
// testing handlers outside a Navigator.
func WithResult(ctx context.Context, res *urlmatch.Result) context.Context {
	return context.WithValue(ctx, ctxKey, res)
}
