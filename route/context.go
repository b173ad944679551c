package route

import "net/http"

// Context carries one request through a handler chain. It is created per
// request and discarded when the chain returns; the captures and matched
// pattern it holds are scoped to that single request.
type Context struct {
	// Writer is the response writer for the request.
	Writer http.ResponseWriter

	// Request is the incoming request. The dispatcher reads Method and
	// URL.Path from it.
	Request *http.Request

	params    map[string]string
	routePath string
}

// NewContext returns a Context for the given response writer and request.
func NewContext(w http.ResponseWriter, req *http.Request) *Context {
	return &Context{Writer: w, Request: req}
}

// Param returns the decoded value of a named capture and whether the
// capture was present in the matched path. Captures from optional branches
// that were not taken do not exist.
func (c *Context) Param(name string) (string, bool) {
	v, ok := c.params[name]
	return v, ok
}

// Params returns every capture extracted from the matched path.
func (c *Context) Params() map[string]string {
	return c.params
}

// RoutePath returns the original pattern string of the matched route, or
// "" when no route has matched.
func (c *Context) RoutePath() string {
	return c.routePath
}

// SetParams replaces the captures on the context. This is intended for
// testing handlers in isolation.
func (c *Context) SetParams(params map[string]string) {
	c.params = params
}
