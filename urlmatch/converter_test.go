package urlmatch

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinConverters(t *testing.T) {
	segments := []string{"42", "-7", "3.14", "550e8400-e29b-41d4-a716-446655440000", "abc", "x", "y"}
	registry := NewRegistry()

	tests := []struct {
		name      string
		converter string
		index     int
		expected  Value
		ok        bool
	}{
		{name: "string", converter: "string", index: 4, expected: StringValue("abc"), ok: true},
		{name: "int", converter: "int", index: 0, expected: IntValue(42), ok: true},
		{name: "negative int", converter: "int", index: 1, expected: IntValue(-7), ok: true},
		{name: "int rejects text", converter: "int", index: 4, ok: false},
		{name: "int rejects decimal", converter: "int", index: 2, ok: false},
		{name: "float", converter: "float", index: 2, expected: FloatValue(3.14), ok: true},
		{name: "float accepts integer", converter: "float", index: 0, expected: FloatValue(42), ok: true},
		{name: "float rejects text", converter: "float", index: 4, ok: false},
		{name: "uuid", converter: "uuid", index: 3, expected: UUIDValue(uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")), ok: true},
		{name: "uuid rejects text", converter: "uuid", index: 4, ok: false},
		{name: "path from middle", converter: "path", index: 4, expected: PathValue("abc/x/y"), ok: true},
		{name: "path last segment", converter: "path", index: 6, expected: PathValue("y"), ok: true},
		{name: "path out of range", converter: "path", index: 7, ok: false},
		{name: "string out of range", converter: "string", index: -1, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			convert, ok := registry.Lookup(tt.converter)
			require.True(t, ok)

			got, ok := convert(segments, tt.index)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestUUIDConverterForms(t *testing.T) {
	convert, ok := NewRegistry().Lookup("uuid")
	require.True(t, ok)

	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "lower case", input: "550e8400-e29b-41d4-a716-446655440000", ok: true},
		{name: "upper case", input: "550E8400-E29B-41D4-A716-446655440000", ok: true},
		{name: "no hyphens", input: "550e8400e29b41d4a716446655440000", ok: false},
		{name: "braced", input: "{550e8400-e29b-41d4-a716-446655440000}", ok: false},
		{name: "urn", input: "urn:uuid:550e8400-e29b-41d4-a716-446655440000", ok: false},
		{name: "bad digit", input: "550e8400-e29b-41d4-a716-44665544000g", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := convert([]string{tt.input}, 0)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, []string{"float", "int", "path", "string", "uuid"}, NewRegistry().Names())
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, NewEmptyRegistry().Names())
	})

	t.Run("register and override", func(t *testing.T) {
		r := NewRegistry()
		r.Register("int", func(segments []string, index int) (Value, bool) {
			return StringValue("custom"), true
		})

		convert, ok := r.Lookup("int")
		require.True(t, ok)
		got, ok := convert([]string{"abc"}, 0)
		assert.True(t, ok)
		assert.Equal(t, StringValue("custom"), got)
	})

	t.Run("unregister", func(t *testing.T) {
		r := NewRegistry()
		r.Unregister("uuid")

		_, ok := r.Lookup("uuid")
		assert.False(t, ok)
		assert.NotContains(t, r.Names(), "uuid")
	})

	t.Run("nil converter is not found", func(t *testing.T) {
		r := NewEmptyRegistry()
		r.Register("nil", nil)

		_, ok := r.Lookup("nil")
		assert.False(t, ok)
	})

	t.Run("concurrent lookups", func(t *testing.T) {
		r := NewRegistry()
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					_, ok := r.Lookup("int")
					assert.True(t, ok)
				}
			}()
		}
		wg.Wait()
	})
}
