package urlmatch

import "strings"

// ComponentKind distinguishes literal pattern segments from placeholders.
type ComponentKind int

const (
	// ComponentLiteral matches a URL segment by exact equality.
	ComponentLiteral ComponentKind = iota
	// ComponentPlaceholder captures a URL segment under a key.
	ComponentPlaceholder
)

// Component is one "/" delimited segment of a pattern.
type Component struct {
	Kind ComponentKind
	// Text is the literal text. Empty for placeholders.
	Text string
	// Type is the converter name of a typed placeholder, "" when untyped.
	Type string
	// Key is the name the captured value is stored under.
	Key string
}

// Literal returns a literal component.
func Literal(text string) Component {
	return Component{Kind: ComponentLiteral, Text: text}
}

// Placeholder returns a placeholder component. An empty typ makes it untyped.
func Placeholder(typ, key string) Component {
	return Component{Kind: ComponentPlaceholder, Type: typ, Key: key}
}

// ParseComponent parses a raw pattern segment. "<key>" and "<type:key>" are
// placeholders; any other token, including bracketed text with more than
// one ':' or an empty key, is a literal of the raw token.
func ParseComponent(raw string) Component {
	if len(raw) < 2 || raw[0] != '<' || raw[len(raw)-1] != '>' {
		return Literal(raw)
	}

	parts := strings.Split(raw[1:len(raw)-1], ":")
	switch {
	case len(parts) == 1 && parts[0] != "":
		return Placeholder("", parts[0])
	case len(parts) == 2 && parts[1] != "":
		return Placeholder(parts[0], parts[1])
	default:
		return Literal(raw)
	}
}

// Equal reports whether c and other describe the same segment.
func (c Component) Equal(other Component) bool {
	if c.Kind != other.Kind {
		return false
	}
	if c.Kind == ComponentLiteral {
		return c.Text == other.Text
	}
	return c.Type == other.Type && c.Key == other.Key
}

// String returns the pattern token form of c.
func (c Component) String() string {
	switch {
	case c.Kind == ComponentLiteral:
		return c.Text
	case c.Type == "":
		return "<" + c.Key + ">"
	default:
		return "<" + c.Type + ":" + c.Key + ">"
	}
}

func (c Component) isPath() bool {
	return c.Kind == ComponentPlaceholder && c.Type == pathConverter
}
