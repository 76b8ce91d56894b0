// Package urlmatch matches URLs against ordered lists of URL templates and
// extracts typed placeholder values.
//
// # Patterns
//
// A pattern is a URL-shaped template: a scheme followed by "/" delimited
// segments. Each segment is either literal text or a placeholder:
//
//	myapp://user/<int:id>
//	myapp://post/<title>
//	myapp://files/<path:rest>
//
// A placeholder is written as <key> or <type:key>. Untyped placeholders
// capture the raw segment. Typed placeholders run the named converter from
// the matcher's Registry and reject the pattern when conversion fails.
// Anything else in angle brackets, such as <int:id:extra>, is literal text.
//
// # Matching
//
//	m := urlmatch.New()
//	res, ok := m.MatchString("myapp://user/42", []string{
//		"myapp://user/<int:id>",
//		"myapp://user/<name>",
//	})
//	if ok {
//		id, _ := res.Values.Int("id") // 42
//	}
//
// Candidates are tried in the given order and the first one that matches
// wins. The URL and every candidate are normalized first: query and fragment
// are dropped, repeated slashes are collapsed and trailing slashes removed.
//
// # Converters
//
// The default Registry provides:
//
//	string - the segment unchanged
//	int    - base-10 integer (e.g. 42, -7)
//	float  - floating point number (e.g. 3.14)
//	uuid   - RFC 4122 UUID in canonical form
//	path   - the segment and everything after it, joined with "/"
//
// RegisterMacros adds regexp-validated string converters (slug, alpha,
// alphanum, date, hex, domain), and RegexpConverter builds a converter from
// any regular expression.
//
// A Registry may be shared by several matchers. It is safe for concurrent
// lookups; registration is meant to happen before matching starts.
package urlmatch
