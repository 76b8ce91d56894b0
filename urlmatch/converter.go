package urlmatch

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Converter turns the URL segment at index into a typed Value. It receives
// every segment of the URL so that converters such as "path" can consume
// the remainder. It reports false when the segment cannot be converted.
type Converter func(segments []string, index int) (Value, bool)

const (
	stringConverter = "string"
	intConverter    = "int"
	floatConverter  = "float"
	uuidConverter   = "uuid"
	pathConverter   = "path"
)

// uuidLen is the length of the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
const uuidLen = 36

// Registry maps placeholder type names to converters.
// Lookups may run concurrently; Register and Unregister take an exclusive
// lock.
type Registry struct {
	mu         sync.RWMutex
	converters map[string]Converter
}

// NewRegistry returns a registry holding the built-in string, int, float,
// uuid and path converters.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.converters[stringConverter] = convertString
	r.converters[intConverter] = convertInt
	r.converters[floatConverter] = convertFloat
	r.converters[uuidConverter] = convertUUID
	r.converters[pathConverter] = convertPath
	return r
}

// NewEmptyRegistry returns a registry without converters.
func NewEmptyRegistry() *Registry {
	return &Registry{converters: make(map[string]Converter)}
}

// Register adds or replaces the converter for name.
func (r *Registry) Register(name string, c Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters[name] = c
}

// Unregister removes the converter for name. Placeholders of that type are
// then matched like untyped placeholders.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.converters, name)
}

// Lookup returns the converter registered for name.
func (r *Registry) Lookup(name string) (Converter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.converters[name]
	return c, ok && c != nil
}

// Names returns the registered converter names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.converters))
	for name := range r.converters {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

func inRange(segments []string, index int) bool {
	return index >= 0 && index < len(segments)
}

func convertString(segments []string, index int) (Value, bool) {
	if !inRange(segments, index) {
		return Value{}, false
	}
	return StringValue(segments[index]), true
}

func convertInt(segments []string, index int) (Value, bool) {
	if !inRange(segments, index) {
		return Value{}, false
	}
	n, err := strconv.ParseInt(segments[index], 10, 64)
	if err != nil {
		return Value{}, false
	}
	return IntValue(n), true
}

func convertFloat(segments []string, index int) (Value, bool) {
	if !inRange(segments, index) {
		return Value{}, false
	}
	f, err := strconv.ParseFloat(segments[index], 64)
	if err != nil {
		return Value{}, false
	}
	return FloatValue(f), true
}

func convertUUID(segments []string, index int) (Value, bool) {
	if !inRange(segments, index) {
		return Value{}, false
	}
	// uuid.Parse also accepts braced, urn and hyphenless forms.
	s := segments[index]
	if len(s) != uuidLen {
		return Value{}, false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return Value{}, false
	}
	return UUIDValue(u), true
}

func convertPath(segments []string, index int) (Value, bool) {
	if !inRange(segments, index) {
		return Value{}, false
	}
	return PathValue(strings.Join(segments[index:], "/")), true
}
