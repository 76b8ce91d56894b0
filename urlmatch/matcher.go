package urlmatch

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Result is a successful match.
type Result struct {
	// Pattern is the matching candidate exactly as it was passed in.
	Pattern string
	// Values holds the extracted placeholder values by key.
	Values Values
}

// Matcher matches URLs against candidate patterns.
// A Matcher is safe for concurrent use as long as its Registry is not
// modified while matches are running.
type Matcher struct {
	converters *Registry
	logger     *slog.Logger

	// warned records patterns already reported by Check during Match.
	warned sync.Map
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithRegistry sets the converter registry. A nil registry is ignored.
func WithRegistry(r *Registry) Option {
	return func(m *Matcher) {
		if r != nil {
			m.converters = r
		}
	}
}

// WithLogger sets the logger used for configuration warnings.
func WithLogger(l *slog.Logger) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns a Matcher. Without options it uses NewRegistry and discards
// log output.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		converters: NewRegistry(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Registry returns the converter registry used by m.
func (m *Matcher) Registry() *Registry {
	return m.converters
}

// MatchString is Match for a plain URL string.
func (m *Matcher) MatchString(rawURL string, candidates []string) (*Result, bool) {
	return m.Match(FromString(rawURL), candidates)
}

// Match returns the first candidate that matches loc, together with the
// values of its placeholders. Candidates are tried in order. A candidate
// matches when its scheme equals the URL scheme, it has as many segments as
// the URL (or contains a path placeholder), every literal segment is equal
// to the URL segment at the same position and every typed placeholder
// converts its segment.
func (m *Matcher) Match(loc Location, candidates []string) (*Result, bool) {
	if loc == nil {
		return nil, false
	}
	normalized := Normalize(loc)
	scheme := Scheme(normalized)
	segments := Segments(normalized)

	for _, candidate := range candidates {
		if Scheme(FromString(candidate)) != scheme {
			continue
		}
		if values, ok := m.matchSegments(segments, candidate); ok {
			return &Result{Pattern: candidate, Values: values}, true
		}
	}
	return nil, false
}

func (m *Matcher) matchSegments(segments []string, candidate string) (Values, bool) {
	components := Components(candidate)
	if !sameLength(segments, components) {
		return nil, false
	}
	m.warnOnce(candidate, components)

	values := make(Values)
	n := min(len(segments), len(components))
	for i := 0; i < n; i++ {
		c := components[i]
		if c.Kind == ComponentLiteral {
			if segments[i] != c.Text {
				return nil, false
			}
			continue
		}

		convert, typed := m.converters.Lookup(c.Type)
		if c.Type == "" || !typed {
			values[c.Key] = StringValue(segments[i])
			continue
		}
		v, ok := convert(segments, i)
		if !ok {
			return nil, false
		}
		values[c.Key] = v
	}
	return values, true
}

// sameLength reports whether the pattern can cover the URL segments: equal
// counts, or a path placeholder anywhere in the pattern.
func sameLength(segments []string, components []Component) bool {
	if len(segments) == len(components) {
		return true
	}
	for _, c := range components {
		if c.isPath() {
			return true
		}
	}
	return false
}

// Segments returns the path segments of the normalized form of loc. Empty
// segments and segments ending in ':' (the scheme token) are dropped.
func Segments(loc Location) []string {
	if loc == nil {
		return nil
	}
	return splitSegments(Normalize(loc).String())
}

// Components returns the parsed components of the normalized pattern.
func Components(pattern string) []Component {
	segments := Segments(FromString(pattern))
	components := make([]Component, len(segments))
	for i, s := range segments {
		components[i] = ParseComponent(s)
	}
	return components
}

func splitSegments(s string) []string {
	parts := strings.Split(s, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p == "" || strings.HasSuffix(p, ":") {
			continue
		}
		segments = append(segments, p)
	}
	return segments
}

// Check returns configuration warnings for pattern: a path placeholder
// that is not the last component, and typed placeholders without a
// registered converter.
func (m *Matcher) Check(pattern string) []string {
	return m.check(pattern, Components(pattern))
}

func (m *Matcher) check(pattern string, components []Component) []string {
	var warnings []string
	for i, c := range components {
		if c.Kind != ComponentPlaceholder || c.Type == "" {
			continue
		}
		if c.isPath() && i != len(components)-1 {
			warnings = append(warnings, fmt.Sprintf("%s: path placeholder %q is not the last segment", pattern, c.Key))
		}
		if _, ok := m.converters.Lookup(c.Type); !ok {
			warnings = append(warnings, fmt.Sprintf("%s: unknown type %q for %q, value is kept as string", pattern, c.Type, c.Key))
		}
	}
	return warnings
}

func (m *Matcher) warnOnce(pattern string, components []Component) {
	if _, seen := m.warned.Load(pattern); seen {
		return
	}
	for _, w := range m.check(pattern, components) {
		m.logger.Warn("urlmatch: pattern configuration", slog.String("pattern", pattern), slog.String("warning", w))
	}
	m.warned.Store(pattern, struct{}{})
}
