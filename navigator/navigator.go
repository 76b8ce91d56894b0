package navigator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/vitalvas/navi/urlmatch"
)

// ErrNotFound is returned when no registered pattern matches the URL.
var ErrNotFound = errors.New("navigator: no matching pattern was found")

// ErrNotHandled is returned when the matched handler reports failure.
var ErrNotHandled = errors.New("navigator: handler did not handle the url")

// Handler opens a matched URL. It reports whether the URL was handled.
type Handler interface {
	Open(ctx context.Context, loc urlmatch.Location) bool
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, loc urlmatch.Location) bool

// Open calls f(ctx, loc).
func (f HandlerFunc) Open(ctx context.Context, loc urlmatch.Location) bool {
	return f(ctx, loc)
}

type entry struct {
	pattern string
	handler Handler
}

// Navigator registers handlers by URL pattern and dispatches URLs to them.
// It is safe for concurrent use.
type Navigator struct {
	matcher *urlmatch.Matcher
	logger  *slog.Logger

	mu          sync.RWMutex
	entries     []*entry
	middlewares []MiddlewareFunc

	// handlerCache caches the middleware-wrapped handler per entry
	// to avoid re-wrapping on every dispatch.
	handlerCache sync.Map // map[*entry]Handler
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithMatcher sets the matcher used to resolve URLs.
func WithMatcher(m *urlmatch.Matcher) Option {
	return func(n *Navigator) {
		if m != nil {
			n.matcher = m
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// New returns an empty Navigator.
func New(opts ...Option) *Navigator {
	n := &Navigator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.matcher == nil {
		n.matcher = urlmatch.New(urlmatch.WithLogger(n.logger))
	}
	return n
}

// Matcher returns the matcher used by n.
func (n *Navigator) Matcher() *urlmatch.Matcher {
	return n.matcher
}

// Handle registers handler for pattern. Registering a pattern again replaces
// its handler and keeps its priority. It panics if handler is nil.
func (n *Navigator) Handle(pattern string, handler Handler) {
	if handler == nil {
		panic("navigator: nil handler")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for _, e := range n.entries {
		if e.pattern == pattern {
			n.handlerCache.Delete(e)
			e.handler = handler
			n.logger.Debug("navigator: handler replaced", slog.String("pattern", pattern))
			return
		}
	}
	n.entries = append(n.entries, &entry{pattern: pattern, handler: handler})
	n.logger.Debug("navigator: handler registered", slog.String("pattern", pattern))
}

// HandleFunc registers a handler function for pattern.
func (n *Navigator) HandleFunc(pattern string, f func(ctx context.Context, loc urlmatch.Location) bool) {
	n.Handle(pattern, HandlerFunc(f))
}

// Remove unregisters pattern. It reports whether the pattern was registered.
func (n *Navigator) Remove(pattern string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, e := range n.entries {
		if e.pattern == pattern {
			n.handlerCache.Delete(e)
			n.entries = slices.Delete(n.entries, i, i+1)
			return true
		}
	}
	return false
}

// Patterns returns the registered patterns in priority order.
func (n *Navigator) Patterns() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	patterns := make([]string, len(n.entries))
	for i, e := range n.entries {
		patterns[i] = e.pattern
	}
	return patterns
}

// Use appends middleware to the chain. Middleware is applied to matched
// handlers only.
func (n *Navigator) Use(mwf ...MiddlewareFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.middlewares = append(n.middlewares, mwf...)
	n.handlerCache.Clear()
}

// Lookup resolves loc to its match and the middleware-wrapped handler.
func (n *Navigator) Lookup(loc urlmatch.Location) (*urlmatch.Result, Handler, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	patterns := make([]string, len(n.entries))
	for i, e := range n.entries {
		patterns[i] = e.pattern
	}

	res, ok := n.matcher.Match(loc, patterns)
	if !ok {
		return nil, nil, false
	}

	// Handle keeps patterns unique.
	idx := slices.Index(patterns, res.Pattern)
	return res, n.wrapped(n.entries[idx]), true
}

// Open dispatches loc to the handler of the first matching pattern. It
// returns false if nothing matches or the handler reports failure.
func (n *Navigator) Open(ctx context.Context, loc urlmatch.Location) bool {
	return n.OpenErr(ctx, loc) == nil
}

// OpenErr is like Open but reports why loc was not opened: ErrNotFound when
// no pattern matches, ErrNotHandled when the handler returned false.
func (n *Navigator) OpenErr(ctx context.Context, loc urlmatch.Location) error {
	res, handler, ok := n.Lookup(loc)
	if !ok {
		n.logger.Debug("navigator: no match", slog.String("url", locString(loc)))
		return ErrNotFound
	}
	if !handler.Open(WithResult(ctx, res), loc) {
		return ErrNotHandled
	}
	return nil
}

// wrapped returns the handler of e with all middleware applied.
// The caller must hold n.mu.
func (n *Navigator) wrapped(e *entry) Handler {
	if len(n.middlewares) == 0 {
		return e.handler
	}
	if cached, ok := n.handlerCache.Load(e); ok {
		return cached.(Handler)
	}
	handler := e.handler
	for i := len(n.middlewares) - 1; i >= 0; i-- {
		handler = n.middlewares[i].Middleware(handler)
	}
	n.handlerCache.Store(e, handler)
	return handler
}

func locString(loc urlmatch.Location) string {
	if loc == nil {
		return ""
	}
	return loc.String()
}
