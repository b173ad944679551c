package route

import "net/http"

// Handler is one link in a handler chain. A handler may produce the
// response itself or call next to continue to the following handler. The
// terminal next of a matched route's chain is the host continuation passed
// to Dispatch.
type Handler func(*Context, Next) error

// Next continues to the next handler in the chain.
type Next func() error

// Route is one registered pattern bound to a verb and a composed handler
// chain. Routes are created at registration time and never mutated.
type Route struct {
	// method is the upper-case verb, empty for the all-methods catch-all.
	method string
	// template is the original pattern string, reported to handlers as
	// the route path.
	template string
	// pattern is the compiled matcher.
	pattern *routePattern
	// handler is the composed handler chain.
	handler Handler
}

// methodAllows reports whether a route registered for routeMethod accepts a
// request with the given method. An empty routeMethod accepts every method,
// and a GET route accepts HEAD requests.
func methodAllows(routeMethod, requestMethod string) bool {
	switch {
	case routeMethod == "":
		return true
	case routeMethod == requestMethod:
		return true
	case routeMethod == http.MethodGet && requestMethod == http.MethodHead:
		return true
	}
	return false
}

// composeChain folds handlers into a single handler executing them in
// order, each receiving a continuation to the next. A single handler is
// returned unchanged.
func composeChain(handlers []Handler) Handler {
	if len(handlers) == 1 {
		return handlers[0]
	}
	return func(c *Context, next Next) error {
		var step func(int) error
		step = func(i int) error {
			if i == len(handlers)-1 {
				return handlers[i](c, next)
			}
			return handlers[i](c, func() error { return step(i + 1) })
		}
		return step(0)
	}
}
