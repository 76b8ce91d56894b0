package urlmatch

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

// Kind identifies the type held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindUUID
	KindPath
)

// String returns the converter-style name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindUUID:
		return "uuid"
	case KindPath:
		return "path"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a value extracted from a URL segment.
// The zero Value is an empty string.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	u    uuid.UUID
}

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// IntValue returns an integer Value.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue returns a floating point Value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// UUIDValue returns a UUID Value.
func UUIDValue(u uuid.UUID) Value { return Value{kind: KindUUID, u: u} }

// PathValue returns a Value holding a "/" joined path remainder.
func PathValue(p string) Value { return Value{kind: KindPath, s: p} }

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// String returns the text form of v for every kind.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindUUID:
		return v.u.String()
	default:
		return v.s
	}
}

// Int returns the integer held by v.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Float returns the float held by v.
func (v Value) Float() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// UUID returns the UUID held by v.
func (v Value) UUID() (uuid.UUID, bool) {
	return v.u, v.kind == KindUUID
}

// Interface returns v as string, int64, float64 or uuid.UUID.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindUUID:
		return v.u
	default:
		return v.s
	}
}

// Equal reports whether v and other hold the same kind and value.
func (v Value) Equal(other Value) bool {
	return v == other
}

// MarshalJSON encodes integers and floats as JSON numbers and everything
// else as strings. Non-finite floats are encoded as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindFloat:
		if b, err := json.Marshal(v.f); err == nil {
			return b, nil
		}
		return json.Marshal(v.String())
	default:
		return json.Marshal(v.String())
	}
}

// Values maps placeholder keys to extracted values.
type Values map[string]Value

// Get returns the value stored under key.
func (vs Values) Get(key string) (Value, bool) {
	v, ok := vs[key]
	return v, ok
}

// String returns the text form of the value under key, or "" if absent.
func (vs Values) String(key string) string {
	return vs[key].String()
}

// Int returns the integer under key. It reports false if the key is absent
// or does not hold an integer.
func (vs Values) Int(key string) (int64, bool) {
	return vs[key].Int()
}

// Float returns the float under key.
func (vs Values) Float(key string) (float64, bool) {
	return vs[key].Float()
}

// UUID returns the UUID under key.
func (vs Values) UUID(key string) (uuid.UUID, bool) {
	return vs[key].UUID()
}

// Strings returns every value in its text form.
func (vs Values) Strings() map[string]string {
	m := make(map[string]string, len(vs))
	for k, v := range vs {
		m[k] = v.String()
	}
	return m
}
