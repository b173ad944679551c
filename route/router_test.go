package route

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noop is a handler that produces no response and does not continue.
func noop(_ *Context, _ Next) error { return nil }

func dispatchRequest(t *testing.T, r *Router, method, target string) (*Context, bool) {
	t.Helper()
	c := NewContext(httptest.NewRecorder(), httptest.NewRequest(method, target, nil))
	fellThrough := false
	err := r.Dispatch(c, func() error {
		fellThrough = true
		return nil
	})
	require.NoError(t, err)
	return c, fellThrough
}

func TestRouterHandle(t *testing.T) {
	t.Run("registers a route", func(t *testing.T) {
		r := NewRouter()
		require.NoError(t, r.Handle(http.MethodGet, "/users/:id", noop))
		assert.Len(t, r.routes, 1)
	})

	t.Run("no handlers error names verb and pattern", func(t *testing.T) {
		r := NewRouter()
		err := r.Handle(http.MethodPost, "/users")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoHandlers)
		assert.Contains(t, err.Error(), "POST")
		assert.Contains(t, err.Error(), `"/users"`)
	})

	t.Run("no handlers error for catch-all names ALL", func(t *testing.T) {
		r := NewRouter()
		err := r.Handle("", "/users")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ALL")
	})

	t.Run("bad pattern error", func(t *testing.T) {
		r := NewRouter()
		err := r.Handle(http.MethodGet, "/api{/:id", noop)
		assert.ErrorIs(t, err, ErrBadPattern)
	})

	t.Run("failed registration adds no route", func(t *testing.T) {
		r := NewRouter()
		_ = r.Handle(http.MethodGet, "/broken{", noop)
		_ = r.Handle(http.MethodGet, "/users")
		assert.Empty(t, r.routes)

		_, fellThrough := dispatchRequest(t, r, http.MethodGet, "/users")
		assert.True(t, fellThrough)
	})

	t.Run("method is case-normalized", func(t *testing.T) {
		r := NewRouter()
		require.NoError(t, r.Handle("get", "/users", noop))
		_, fellThrough := dispatchRequest(t, r, http.MethodGet, "/users")
		assert.False(t, fellThrough)
	})

	t.Run("verb methods panic on bad pattern", func(t *testing.T) {
		r := NewRouter()
		assert.Panics(t, func() {
			r.Get("/api{/:id", noop)
		})
	})

	t.Run("verb methods chain", func(t *testing.T) {
		r := NewRouter()
		got := r.Get("/a", noop).Post("/b", noop).All("/c", noop)
		assert.Same(t, r, got)
		assert.Len(t, r.routes, 3)
	})
}

func TestRouterDispatch(t *testing.T) {
	t.Run("invokes the handler chain exactly once", func(t *testing.T) {
		calls := 0
		r := NewRouter()
		r.Get("/users/:id", func(_ *Context, _ Next) error {
			calls++
			return nil
		})

		_, fellThrough := dispatchRequest(t, r, http.MethodGet, "/users/42")
		assert.False(t, fellThrough)
		assert.Equal(t, 1, calls)
	})

	t.Run("populates params and route path", func(t *testing.T) {
		r := NewRouter()
		r.Get("/api/:resource{/:id}", noop)

		c, _ := dispatchRequest(t, r, http.MethodGet, "/api/users/1")
		assert.Equal(t, map[string]string{"resource": "users", "id": "1"}, c.Params())
		assert.Equal(t, "/api/:resource{/:id}", c.RoutePath())
	})

	t.Run("optional branch not taken omits the name", func(t *testing.T) {
		r := NewRouter()
		r.Get("/api/:resource{/:id}", noop)

		c, _ := dispatchRequest(t, r, http.MethodGet, "/api/users")
		assert.Equal(t, map[string]string{"resource": "users"}, c.Params())
		_, ok := c.Param("id")
		assert.False(t, ok)
	})

	t.Run("wildcard keeps delimiters in the capture", func(t *testing.T) {
		r := NewRouter()
		r.Get("/*path", noop)

		c, _ := dispatchRequest(t, r, http.MethodGet, "/a/b")
		v, ok := c.Param("path")
		require.True(t, ok)
		assert.Equal(t, "a/b", v)
	})

	t.Run("first registered route wins", func(t *testing.T) {
		r := NewRouter()
		r.Get("/users/:id", noop)
		r.Get("/*rest", noop)

		c, _ := dispatchRequest(t, r, http.MethodGet, "/users/42")
		assert.Equal(t, "/users/:id", c.RoutePath())
	})

	t.Run("method mismatch moves to the next route", func(t *testing.T) {
		r := NewRouter()
		r.Post("/thing", noop)
		r.Get("/thing", noop)

		c, fellThrough := dispatchRequest(t, r, http.MethodGet, "/thing")
		assert.False(t, fellThrough)
		assert.Equal(t, "/thing", c.RoutePath())
	})

	t.Run("HEAD request matches a GET route", func(t *testing.T) {
		r := NewRouter()
		r.Get("/users/:id", noop)

		c, fellThrough := dispatchRequest(t, r, http.MethodHead, "/users/42")
		assert.False(t, fellThrough)
		v, _ := c.Param("id")
		assert.Equal(t, "42", v)
	})

	t.Run("explicit HEAD route registered first wins over GET", func(t *testing.T) {
		var matched []string
		r := NewRouter()
		r.Head("/users/:id", func(_ *Context, _ Next) error {
			matched = append(matched, "head")
			return nil
		})
		r.Get("/users/:id", func(_ *Context, _ Next) error {
			matched = append(matched, "get")
			return nil
		})

		_, _ = dispatchRequest(t, r, http.MethodHead, "/users/1")
		assert.Equal(t, []string{"head"}, matched)
	})

	t.Run("catch-all route matches every verb", func(t *testing.T) {
		r := NewRouter()
		r.All("/anything", noop)

		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions} {
			_, fellThrough := dispatchRequest(t, r, method, "/anything")
			assert.False(t, fellThrough, method)
		}
	})

	t.Run("no match defers to the continuation", func(t *testing.T) {
		r := NewRouter()
		r.Get("/users", noop)

		c, fellThrough := dispatchRequest(t, r, http.MethodGet, "/posts")
		assert.True(t, fellThrough)
		assert.Empty(t, c.RoutePath())
		assert.Nil(t, c.Params())
	})

	t.Run("terminal next of a matched chain is the continuation", func(t *testing.T) {
		r := NewRouter()
		r.Get("/users", func(_ *Context, next Next) error {
			return next()
		})

		_, fellThrough := dispatchRequest(t, r, http.MethodGet, "/users")
		assert.True(t, fellThrough)
	})

	t.Run("params are replaced on each dispatch", func(t *testing.T) {
		r := NewRouter()
		r.Get("/users/:id", noop)
		r.Get("/health", noop)

		c := NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/42", nil))
		require.NoError(t, r.Dispatch(c, func() error { return nil }))
		assert.Equal(t, map[string]string{"id": "42"}, c.Params())

		c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
		require.NoError(t, r.Dispatch(c, func() error { return nil }))
		assert.Empty(t, c.Params())
	})

	t.Run("multiple handlers run in registration order", func(t *testing.T) {
		var order []string
		r := NewRouter()
		r.Get("/x",
			func(_ *Context, next Next) error {
				order = append(order, "auth")
				return next()
			},
			func(_ *Context, _ Next) error {
				order = append(order, "handler")
				return nil
			},
		)

		_, _ = dispatchRequest(t, r, http.MethodGet, "/x")
		assert.Equal(t, []string{"auth", "handler"}, order)
	})
}

func TestRouterOptions(t *testing.T) {
	t.Run("case sensitivity", func(t *testing.T) {
		r := NewRouter().CaseSensitive(true)
		r.Get("/Hoa", noop)

		_, fellThrough := dispatchRequest(t, r, http.MethodGet, "/hoa")
		assert.True(t, fellThrough)
		_, fellThrough = dispatchRequest(t, r, http.MethodGet, "/Hoa")
		assert.False(t, fellThrough)
	})

	t.Run("insensitive by default", func(t *testing.T) {
		r := NewRouter()
		r.Get("/Hoa", noop)

		_, fellThrough := dispatchRequest(t, r, http.MethodGet, "/hoa")
		assert.False(t, fellThrough)
	})

	t.Run("prefix matching", func(t *testing.T) {
		r := NewRouter().MatchEnd(false)
		r.Get("/api", noop)

		_, fellThrough := dispatchRequest(t, r, http.MethodGet, "/api/users/42")
		assert.False(t, fellThrough)
	})

	t.Run("trailing slash rejected when disabled", func(t *testing.T) {
		r := NewRouter().TrailingSlash(false)
		r.Get("/users", noop)

		_, fellThrough := dispatchRequest(t, r, http.MethodGet, "/users/")
		assert.True(t, fellThrough)
	})
}

func TestRouterServeHTTP(t *testing.T) {
	t.Run("dispatches to matched handler", func(t *testing.T) {
		r := NewRouter()
		r.Get("/hello/:name", func(c *Context, _ Next) error {
			name, _ := c.Param("name")
			c.Text(http.StatusOK, "hello "+name)
			return nil
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hello/world", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello world", w.Body.String())
	})

	t.Run("returns 404 for unmatched path", func(t *testing.T) {
		r := NewRouter()
		r.Get("/hello", noop)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notfound", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("uses custom NotFoundHandler", func(t *testing.T) {
		r := NewRouter()
		r.NotFoundHandler = func(c *Context, _ Next) error {
			c.Text(http.StatusNotFound, "custom 404")
			return nil
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notfound", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "custom 404", w.Body.String())
	})

	t.Run("handler error yields 500", func(t *testing.T) {
		r := NewRouter()
		r.Get("/boom", func(_ *Context, _ Next) error {
			return fmt.Errorf("kaput")
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("use middleware runs before dispatch", func(t *testing.T) {
		var order []string
		r := NewRouter()
		r.Use(func(_ *Context, next Next) error {
			order = append(order, "mw")
			return next()
		})
		r.Get("/x", func(_ *Context, _ Next) error {
			order = append(order, "route")
			return nil
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, []string{"mw", "route"}, order)
	})

	t.Run("use middleware runs for unmatched requests", func(t *testing.T) {
		seen := false
		r := NewRouter()
		r.Use(func(_ *Context, next Next) error {
			seen = true
			return next()
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/none", nil))
		assert.True(t, seen)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouterMiddleware(t *testing.T) {
	t.Run("unmatched requests continue to the outer chain", func(t *testing.T) {
		r := NewRouter()
		r.Get("/inner", noop)

		outerCalled := false
		h := r.Middleware()
		c := NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/other", nil))
		err := h(c, func() error {
			outerCalled = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, outerCalled)
	})

	t.Run("matched requests do not reach the outer chain", func(t *testing.T) {
		r := NewRouter()
		r.Get("/inner", noop)

		outerCalled := false
		h := r.Middleware()
		c := NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/inner", nil))
		err := h(c, func() error {
			outerCalled = true
			return nil
		})
		require.NoError(t, err)
		assert.False(t, outerCalled)
	})
}

func TestRouterRoutes(t *testing.T) {
	t.Run("lists routes in registration order", func(t *testing.T) {
		r := NewRouter()
		r.Get("/users/:id", noop)
		r.All("/health", noop)

		infos := r.Routes()
		require.Len(t, infos, 2)
		assert.Equal(t, RouteInfo{Method: "GET", Pattern: "/users/:id", Params: []string{"id"}}, infos[0])
		assert.Equal(t, RouteInfo{Method: "ALL", Pattern: "/health"}, infos[1])
	})

	t.Run("empty router", func(t *testing.T) {
		r := NewRouter()
		assert.Empty(t, r.Routes())
	})
}
