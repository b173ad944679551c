package route

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// methodAll is the verb label reported for catch-all routes.
const methodAll = "ALL"

// Router registers routes and dispatches requests to the first matching
// one, in registration order.
//
// It implements the http.Handler interface, so it can serve requests
// directly:
//
//	r := route.NewRouter()
//	r.Get("/users/:id", handler)
//	http.ListenAndServe(":8080", r)
//
// It can also be embedded as a single handler in an outer chain via
// Middleware, deferring unmatched requests to the outer continuation.
type Router struct {
	// NotFoundHandler is invoked when no route matches a request served
	// through ServeHTTP. If nil, http.NotFound is used. It plays no part
	// in Dispatch, where unmatched requests go to the host continuation.
	NotFoundHandler Handler

	routes     []*Route
	middleware []Handler
	opts       patternOptions

	// stack is the Use-middleware chain terminating in dispatch, composed
	// once on first request.
	stack     Handler
	stackOnce sync.Once
}

// NewRouter returns a new router with default matching options:
// case-insensitive, full-path matching with one trailing delimiter
// tolerated, "/" as the segment delimiter.
func NewRouter() *Router {
	return &Router{opts: defaultPatternOptions()}
}

// CaseSensitive sets whether literal pattern text matches
// case-sensitively. Applies to routes registered after the call.
func (r *Router) CaseSensitive(v bool) *Router {
	r.opts.sensitive = v
	return r
}

// MatchEnd sets whether a match must consume the entire path. When false,
// a matching prefix is sufficient and the remainder is ignored.
func (r *Router) MatchEnd(v bool) *Router {
	r.opts.end = v
	return r
}

// TrailingSlash sets whether one optional trailing delimiter is permitted
// after an otherwise complete match.
func (r *Router) TrailingSlash(v bool) *Router {
	r.opts.trailing = v
	return r
}

// Delimiter sets the segment boundary character used to bound named
// captures.
func (r *Router) Delimiter(d byte) *Router {
	r.opts.delimiter = d
	return r
}

// Use appends handlers that run for every request dispatched through the
// router, before route matching.
func (r *Router) Use(handlers ...Handler) *Router {
	r.middleware = append(r.middleware, handlers...)
	return r
}

// Handle compiles pattern and registers it for the given method with the
// supplied handler chain. An empty method or "ALL" registers a catch-all
// matching every verb. Registration errors (a malformed pattern, an empty
// handler chain) are returned synchronously and leave the registry
// unchanged; they are programming errors, not request-time conditions.
func (r *Router) Handle(method, pattern string, handlers ...Handler) error {
	verb := strings.ToUpper(method)
	if verb == methodAll {
		verb = ""
	}

	if len(handlers) == 0 {
		return fmt.Errorf("%w for %s %q", ErrNoHandlers, verbLabel(verb), pattern)
	}

	compiled, err := compilePattern(pattern, r.opts)
	if err != nil {
		return err
	}

	r.routes = append(r.routes, &Route{
		method:   verb,
		template: pattern,
		pattern:  compiled,
		handler:  composeChain(handlers),
	})

	return nil
}

// mustHandle backs the chainable verb methods. Registration errors are
// programming errors, so they panic the way http.ServeMux does for
// conflicting patterns.
func (r *Router) mustHandle(method, pattern string, handlers []Handler) *Router {
	if err := r.Handle(method, pattern, handlers...); err != nil {
		panic(err)
	}
	return r
}

// Get registers handlers for GET requests on pattern. GET routes also
// accept HEAD requests.
func (r *Router) Get(pattern string, handlers ...Handler) *Router {
	return r.mustHandle(http.MethodGet, pattern, handlers)
}

// Head registers handlers for HEAD requests on pattern.
func (r *Router) Head(pattern string, handlers ...Handler) *Router {
	return r.mustHandle(http.MethodHead, pattern, handlers)
}

// Post registers handlers for POST requests on pattern.
func (r *Router) Post(pattern string, handlers ...Handler) *Router {
	return r.mustHandle(http.MethodPost, pattern, handlers)
}

// Put registers handlers for PUT requests on pattern.
func (r *Router) Put(pattern string, handlers ...Handler) *Router {
	return r.mustHandle(http.MethodPut, pattern, handlers)
}

// Patch registers handlers for PATCH requests on pattern.
func (r *Router) Patch(pattern string, handlers ...Handler) *Router {
	return r.mustHandle(http.MethodPatch, pattern, handlers)
}

// Delete registers handlers for DELETE requests on pattern.
func (r *Router) Delete(pattern string, handlers ...Handler) *Router {
	return r.mustHandle(http.MethodDelete, pattern, handlers)
}

// Options registers handlers for OPTIONS requests on pattern.
func (r *Router) Options(pattern string, handlers ...Handler) *Router {
	return r.mustHandle(http.MethodOptions, pattern, handlers)
}

// All registers handlers on pattern for every request method.
func (r *Router) All(pattern string, handlers ...Handler) *Router {
	return r.mustHandle("", pattern, handlers)
}

// Dispatch scans the registered routes in registration order and runs the
// first route whose verb and pattern both accept the request. On a match
// the context's params are replaced with the decoded captures, the route's
// original pattern is recorded, and the route's handler chain runs with
// next as its terminal continuation. When no route matches, next is
// invoked directly and the router contributes nothing to the response.
//
// Dispatch holds no state between calls; concurrent dispatches over a
// fully-registered router need no synchronization.
func (r *Router) Dispatch(c *Context, next Next) error {
	method := strings.ToUpper(c.Request.Method)
	path := c.Request.URL.Path

	for _, rt := range r.routes {
		if !methodAllows(rt.method, method) {
			continue
		}
		captures := rt.pattern.match(path)
		if captures == nil {
			continue
		}
		c.params = decodeParams(rt.pattern.varsN, captures)
		c.routePath = rt.template
		return rt.handler(c, next)
	}

	return next()
}

// Middleware returns the router as a single handler for embedding in an
// outer chain. Use middleware runs first, then dispatch; requests matching
// no route continue to the outer next.
func (r *Router) Middleware() Handler {
	return func(c *Context, next Next) error {
		return r.handlerStack()(c, next)
	}
}

// ServeHTTP dispatches the request through the Use middleware and the
// registered routes. Unmatched requests receive a 404 response; an error
// escaping the handler chain surfaces as a 500.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	c := NewContext(w, req)

	// Writes go through c.Writer and c.Request rather than the raw
	// arguments, so replacements installed by middleware stay in effect.
	notFound := func() error {
		if r.NotFoundHandler != nil {
			return r.NotFoundHandler(c, func() error { return nil })
		}
		http.NotFound(c.Writer, c.Request)
		return nil
	}

	if err := r.handlerStack()(c, notFound); err != nil {
		http.Error(c.Writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// handlerStack returns the Use-middleware chain terminating in dispatch.
// Composed once; registration after traffic has started is out of scope.
func (r *Router) handlerStack() Handler {
	r.stackOnce.Do(func() {
		dispatch := func(c *Context, next Next) error {
			return r.Dispatch(c, next)
		}
		if len(r.middleware) == 0 {
			r.stack = dispatch
			return
		}
		r.stack = composeChain(append(append([]Handler{}, r.middleware...), dispatch))
	})
	return r.stack
}

// RouteInfo describes one registered route.
type RouteInfo struct {
	Method  string   `json:"method" yaml:"method"`
	Pattern string   `json:"pattern" yaml:"pattern"`
	Params  []string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Routes returns a description of every registered route in registration
// order.
func (r *Router) Routes() []RouteInfo {
	infos := make([]RouteInfo, 0, len(r.routes))
	for _, rt := range r.routes {
		infos = append(infos, RouteInfo{
			Method:  verbLabel(rt.method),
			Pattern: rt.template,
			Params:  append([]string(nil), rt.pattern.varsN...),
		})
	}
	return infos
}

// verbLabel returns the verb as reported in errors and route listings.
func verbLabel(method string) string {
	if method == "" {
		return methodAll
	}
	return method
}
