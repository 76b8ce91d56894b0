package urlmatch

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"sync"
)

// varMatcher validates a single segment.
// *regexp.Regexp satisfies this interface.
type varMatcher interface {
	MatchString(string) bool
	String() string
}

// lengthMatcher wraps a regexp with an additional maximum length constraint.
type lengthMatcher struct {
	re     *regexp.Regexp
	maxLen int
}

func (m *lengthMatcher) MatchString(s string) bool {
	return len(s) <= m.maxLen && m.re.MatchString(s)
}

func (m *lengthMatcher) String() string {
	return m.re.String()
}

// macroPatterns maps macro names to the segment patterns they accept.
var macroPatterns = map[string]string{
	"slug":     `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`,
	"alpha":    `[a-zA-Z]+`,
	"alphanum": `[a-zA-Z0-9]+`,
	"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
	"hex":      `[0-9a-fA-F]+`,
	// RFC 1035/1123: labels 1-63 chars, total up to 253 chars.
	"domain": `(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`,
}

// Macros that require additional length validation beyond regex.
var macroMaxLengths = map[string]int{
	"domain": 253,
}

// macroConverters holds the compiled macro converters, built on first use.
var macroConverters = sync.OnceValue(func() map[string]Converter {
	m := make(map[string]Converter, len(macroPatterns))
	for name, pattern := range macroPatterns {
		var matcher varMatcher = regexp.MustCompile(fmt.Sprintf("^(?:%s)$", pattern))
		if maxLen, ok := macroMaxLengths[name]; ok {
			matcher = &lengthMatcher{re: matcher.(*regexp.Regexp), maxLen: maxLen}
		}
		m[name] = matcherConverter(matcher)
	}
	return m
})

// MacroNames returns the names accepted by Macro in sorted order.
func MacroNames() []string {
	return slices.Sorted(maps.Keys(macroPatterns))
}

// Macro returns the named macro converter. Macros are string converters
// that accept only segments matching a fixed pattern.
func Macro(name string) (Converter, bool) {
	c, ok := macroConverters()[name]
	return c, ok
}

// RegisterMacros registers every macro converter in r under its own name.
func RegisterMacros(r *Registry) {
	for name, c := range macroConverters() {
		r.Register(name, c)
	}
}

// regexpConverters caches converters built by RegexpConverter by pattern.
var regexpConverters sync.Map // map[string]Converter

// RegexpConverter returns a string converter accepting segments that fully
// match pattern. Converters are cached per pattern.
func RegexpConverter(pattern string) (Converter, error) {
	if c, ok := regexpConverters.Load(pattern); ok {
		return c.(Converter), nil
	}

	re, err := regexp.Compile(fmt.Sprintf("^(?:%s)$", pattern))
	if err != nil {
		return nil, fmt.Errorf("urlmatch: invalid converter pattern %q: %w", pattern, err)
	}

	c, _ := regexpConverters.LoadOrStore(pattern, matcherConverter(re))
	return c.(Converter), nil
}

func matcherConverter(m varMatcher) Converter {
	return func(segments []string, index int) (Value, bool) {
		if !inRange(segments, index) || !m.MatchString(segments[index]) {
			return Value{}, false
		}
		return StringValue(segments[index]), true
	}
}
