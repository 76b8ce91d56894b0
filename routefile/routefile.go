// Package routefile loads URL route tables from YAML.
//
// A route file lists patterns in priority order and may declare extra
// converters, either by macro name or by regular expression:
//
//	converters:
//	  - name: slug
//	    macro: slug
//	  - name: year
//	    regexp: "[0-9]{4}"
//	routes:
//	  - pattern: "myapp://user/<int:id>"
//	    name: user
//	  - pattern: "myapp://archive/<year:y>"
package routefile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/navi/urlmatch"
)

// ErrInvalidRoute is returned for route entries that cannot be used.
var ErrInvalidRoute = errors.New("invalid route")

// ErrInvalidConverter is returned for converter declarations that cannot be
// used.
var ErrInvalidConverter = errors.New("invalid converter")

// File is a parsed route file.
type File struct {
	Converters []Converter `yaml:"converters,omitempty"`
	Routes     []Route     `yaml:"routes"`
}

// Route is one pattern entry.
type Route struct {
	Pattern string `yaml:"pattern"`
	// Name is an optional label for the route.
	Name string `yaml:"name,omitempty"`
}

// Converter declares a converter. Exactly one of Macro and Regexp is set.
type Converter struct {
	Name   string `yaml:"name"`
	Macro  string `yaml:"macro,omitempty"`
	Regexp string `yaml:"regexp,omitempty"`
}

// Load reads and parses the route file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a route file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("routefile: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks every route and converter declaration.
func (f *File) Validate() error {
	for i, c := range f.Converters {
		if _, err := c.converter(); err != nil {
			return fmt.Errorf("routefile: converter %d: %w", i, err)
		}
	}
	for i, r := range f.Routes {
		if r.Pattern == "" {
			return fmt.Errorf("routefile: route %d: %w: empty pattern", i, ErrInvalidRoute)
		}
	}
	return nil
}

// Patterns returns the route patterns in file order.
func (f *File) Patterns() []string {
	patterns := make([]string, len(f.Routes))
	for i, r := range f.Routes {
		patterns[i] = r.Pattern
	}
	return patterns
}

// Route returns the route with the given pattern.
func (f *File) Route(pattern string) (Route, bool) {
	for _, r := range f.Routes {
		if r.Pattern == pattern {
			return r, true
		}
	}
	return Route{}, false
}

// Apply registers the declared converters in reg. Later declarations
// replace earlier ones with the same name.
func (f *File) Apply(reg *urlmatch.Registry) error {
	for i, c := range f.Converters {
		conv, err := c.converter()
		if err != nil {
			return fmt.Errorf("routefile: converter %d: %w", i, err)
		}
		reg.Register(c.Name, conv)
	}
	return nil
}

func (c Converter) converter() (urlmatch.Converter, error) {
	switch {
	case c.Name == "":
		return nil, fmt.Errorf("%w: missing name", ErrInvalidConverter)
	case c.Macro != "" && c.Regexp != "":
		return nil, fmt.Errorf("%w: %q sets both macro and regexp", ErrInvalidConverter, c.Name)
	case c.Macro != "":
		conv, ok := urlmatch.Macro(c.Macro)
		if !ok {
			return nil, fmt.Errorf("%w: %q uses unknown macro %q", ErrInvalidConverter, c.Name, c.Macro)
		}
		return conv, nil
	case c.Regexp != "":
		conv, err := urlmatch.RegexpConverter(c.Regexp)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidConverter, c.Name, err)
		}
		return conv, nil
	default:
		return nil, fmt.Errorf("%w: %q needs a macro or a regexp", ErrInvalidConverter, c.Name)
	}
}
