package urlmatch

import (
	"net/url"
	"strings"
)

// Location is a URL-like value. It yields an optional structured URL and a
// canonical string form of the same address.
type Location interface {
	// URL returns the parsed URL, or nil if the value cannot be parsed.
	URL() *url.URL
	// String returns the string form of the address.
	String() string
}

type stringLocation struct {
	raw string
	u   *url.URL
}

func (l stringLocation) URL() *url.URL  { return l.u }
func (l stringLocation) String() string { return l.raw }

type urlLocation struct {
	u *url.URL
}

func (l urlLocation) URL() *url.URL { return l.u }

func (l urlLocation) String() string {
	if l.u == nil {
		return ""
	}
	return l.u.String()
}

// FromString returns a Location for s. If s does not parse as a URL, it is
// parsed again with invalid bytes percent-encoded. When that fails as well
// but s starts with a scheme, the URL is split by hand into scheme, opaque
// remainder, query and fragment; otherwise the Location has no structured
// URL.
func FromString(s string) Location {
	return stringLocation{raw: s, u: parseLenient(s)}
}

// FromURL returns a Location backed by u.
func FromURL(u *url.URL) Location {
	return urlLocation{u: u}
}

// Scheme returns the lowercased scheme of loc, or "" if loc has no scheme
// or cannot be parsed.
func Scheme(loc Location) string {
	if loc == nil {
		return ""
	}
	u := loc.URL()
	if u == nil {
		return ""
	}
	return u.Scheme
}

func parseLenient(s string) *url.URL {
	if u, err := url.Parse(s); err == nil {
		return u
	}
	escaped := escapeInvalid(s)
	if escaped != s {
		if u, err := url.Parse(escaped); err == nil {
			return u
		}
	}
	return splitOpaque(s)
}

// splitOpaque handles strings such as "app://<int:id>" that net/url rejects
// (the placeholder reads as an invalid port) but still carry a scheme.
func splitOpaque(s string) *url.URL {
	scheme, rest, ok := strings.Cut(s, ":")
	if !ok || !validScheme(scheme) {
		return nil
	}
	u := &url.URL{Scheme: strings.ToLower(scheme)}
	rest, u.Fragment, _ = strings.Cut(rest, "#")
	rest, u.RawQuery, u.ForceQuery = strings.Cut(rest, "?")
	u.ForceQuery = u.ForceQuery && u.RawQuery == ""
	u.Opaque = rest
	return u
}

func validScheme(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// escapeInvalid percent-encodes spaces, control bytes, non-ASCII bytes and
// '%' signs that do not start a valid escape.
func escapeInvalid(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(c)
		case c <= ' ' || c >= 0x7f || c == '%':
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
