package navigator

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/navi/urlmatch"
)

func TestNavigatorOpen(t *testing.T) {
	t.Run("dispatches to the matching handler", func(t *testing.T) {
		nav := New()
		var gotID int64
		var gotPattern string
		nav.HandleFunc("myapp://user/<int:id>", func(ctx context.Context, _ urlmatch.Location) bool {
			gotID, _ = Values(ctx).Int("id")
			gotPattern, _ = Pattern(ctx)
			return true
		})

		assert.True(t, nav.Open(context.Background(), urlmatch.FromString("myapp://user/42")))
		assert.Equal(t, int64(42), gotID)
		assert.Equal(t, "myapp://user/<int:id>", gotPattern)
	})

	t.Run("handler receives the original location", func(t *testing.T) {
		nav := New()
		var got string
		nav.HandleFunc("myapp://search", func(_ context.Context, loc urlmatch.Location) bool {
			got = urlmatch.QueryParameters(loc)["q"]
			return true
		})

		require.True(t, nav.Open(context.Background(), urlmatch.FromString("myapp://search?q=go")))
		assert.Equal(t, "go", got)
	})

	t.Run("no match", func(t *testing.T) {
		nav := New()
		nav.HandleFunc("myapp://user/<int:id>", func(context.Context, urlmatch.Location) bool { return true })

		assert.False(t, nav.Open(context.Background(), urlmatch.FromString("myapp://post/1")))
		assert.ErrorIs(t, nav.OpenErr(context.Background(), urlmatch.FromString("myapp://post/1")), ErrNotFound)
	})

	t.Run("handler failure", func(t *testing.T) {
		nav := New()
		nav.HandleFunc("myapp://user/<int:id>", func(context.Context, urlmatch.Location) bool { return false })

		err := nav.OpenErr(context.Background(), urlmatch.FromString("myapp://user/1"))
		assert.ErrorIs(t, err, ErrNotHandled)
	})

	t.Run("nil location", func(t *testing.T) {
		nav := New()
		nav.HandleFunc("myapp://user", func(context.Context, urlmatch.Location) bool { return true })

		assert.ErrorIs(t, nav.OpenErr(context.Background(), nil), ErrNotFound)
	})
}

func TestNavigatorPriority(t *testing.T) {
	t.Run("registration order wins", func(t *testing.T) {
		nav := New()
		var hit string
		nav.HandleFunc("myapp://user/<name>", func(context.Context, urlmatch.Location) bool {
			hit = "name"
			return true
		})
		nav.HandleFunc("myapp://user/<int:id>", func(context.Context, urlmatch.Location) bool {
			hit = "id"
			return true
		})

		require.True(t, nav.Open(context.Background(), urlmatch.FromString("myapp://user/42")))
		assert.Equal(t, "name", hit)
	})

	t.Run("re-registering replaces in place", func(t *testing.T) {
		nav := New()
		var hit string
		nav.HandleFunc("myapp://a/<x>", func(context.Context, urlmatch.Location) bool {
			hit = "first"
			return true
		})
		nav.HandleFunc("myapp://a/<int:x>", func(context.Context, urlmatch.Location) bool {
			hit = "typed"
			return true
		})
		nav.HandleFunc("myapp://a/<x>", func(context.Context, urlmatch.Location) bool {
			hit = "replaced"
			return true
		})

		assert.Equal(t, []string{"myapp://a/<x>", "myapp://a/<int:x>"}, nav.Patterns())
		require.True(t, nav.Open(context.Background(), urlmatch.FromString("myapp://a/1")))
		assert.Equal(t, "replaced", hit)
	})

	t.Run("remove", func(t *testing.T) {
		nav := New()
		nav.HandleFunc("myapp://a", func(context.Context, urlmatch.Location) bool { return true })
		nav.HandleFunc("myapp://b", func(context.Context, urlmatch.Location) bool { return true })

		assert.True(t, nav.Remove("myapp://a"))
		assert.False(t, nav.Remove("myapp://a"))
		assert.Equal(t, []string{"myapp://b"}, nav.Patterns())
		assert.False(t, nav.Open(context.Background(), urlmatch.FromString("myapp://a")))
	})
}

func TestNavigatorLookup(t *testing.T) {
	nav := New()
	nav.HandleFunc("myapp://files/<path:rest>", func(context.Context, urlmatch.Location) bool { return true })

	res, handler, ok := nav.Lookup(urlmatch.FromString("myapp://files/a/b"))
	require.True(t, ok)
	require.NotNil(t, handler)
	assert.Equal(t, "myapp://files/<path:rest>", res.Pattern)
	assert.Equal(t, "a/b", res.Values.String("rest"))

	_, _, ok = nav.Lookup(urlmatch.FromString("other://files/a"))
	assert.False(t, ok)
}

func TestNavigatorWithMatcher(t *testing.T) {
	r := urlmatch.NewRegistry()
	urlmatch.RegisterMacros(r)
	m := urlmatch.New(urlmatch.WithRegistry(r))
	nav := New(WithMatcher(m))
	assert.Same(t, m, nav.Matcher())

	nav.HandleFunc("blog://posts/<slug:s>", func(context.Context, urlmatch.Location) bool { return true })

	assert.True(t, nav.Open(context.Background(), urlmatch.FromString("blog://posts/hello-world")))
	assert.False(t, nav.Open(context.Background(), urlmatch.FromString("blog://posts/-nope")))
}

func TestNavigatorNilHandler(t *testing.T) {
	assert.Panics(t, func() {
		New().Handle("myapp://x", nil)
	})
}

func TestNavigatorConcurrentOpen(t *testing.T) {
	nav := New()
	var mu sync.Mutex
	count := 0
	nav.HandleFunc("myapp://n/<int:n>", func(context.Context, urlmatch.Location) bool {
		mu.Lock()
		count++
		mu.Unlock()
		return true
	})
	nav.Use(LoggingMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				nav.Open(context.Background(), urlmatch.FromString("myapp://n/1"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 400, count)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, Values(ctx))
	_, ok := Pattern(ctx)
	assert.False(t, ok)

	ctx = WithResult(ctx, &urlmatch.Result{
		Pattern: "myapp://user/<int:id>",
		Values:  urlmatch.Values{"id": urlmatch.IntValue(7)},
	})
	id, ok := Values(ctx).Int("id")
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	pattern, ok := Pattern(ctx)
	assert.True(t, ok)
	assert.Equal(t, "myapp://user/<int:id>", pattern)
}
