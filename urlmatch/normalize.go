package urlmatch

import "strings"

// Normalize returns the canonical form of loc: query and fragment removed,
// redundant slashes collapsed and trailing slashes stripped. The "://"
// scheme separator is preserved. A Location without a structured URL is
// returned unchanged.
//
// Normalize is idempotent.
func Normalize(loc Location) Location {
	if loc == nil || loc.URL() == nil {
		return loc
	}
	return FromString(normalizeString(loc.String()))
}

// NormalizeString is Normalize for plain strings.
func NormalizeString(s string) string {
	return Normalize(FromString(s)).String()
}

// normalizeString applies the normalization rules to s without checking
// that s parses as a URL.
func normalizeString(s string) string {
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	return collapseSlashes(s)
}

// collapseSlashes rewrites every run of slashes in s:
//   - after ':' a run of three or more becomes "//", shorter runs are kept;
//   - elsewhere a run of two or more becomes "/";
//   - a trailing run not preceded by ':' is dropped.
func collapseSlashes(s string) string {
	if !strings.Contains(s, "/") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '/' {
			b.WriteByte(s[i])
			i++
			continue
		}

		start := i
		for i < len(s) && s[i] == '/' {
			i++
		}
		run := i - start
		afterColon := start > 0 && s[start-1] == ':'

		switch {
		case afterColon && run >= 3:
			b.WriteString("//")
		case afterColon:
			b.WriteString(s[start:i])
		case i == len(s):
			// trailing separator
		default:
			b.WriteByte('/')
		}
	}
	return b.String()
}
