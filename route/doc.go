// Package route implements an ordered request router: patterns are
// compiled at registration time and incoming requests are dispatched to
// the first registered route whose verb and path both match.
//
// # Router
//
// Create a router and register handlers per HTTP verb:
//
//	r := route.NewRouter()
//	r.Get("/users/:id", func(c *route.Context, next route.Next) error {
//	    id, _ := c.Param("id")
//	    c.Text(http.StatusOK, id)
//	    return nil
//	})
//	http.ListenAndServe(":8080", r)
//
// Verb methods return the router, so registrations chain:
//
//	r.Get("/users", listUsers).
//	    Post("/users", createUser).
//	    All("/health", health)
//
// # Pattern Grammar
//
// A pattern mixes literal text with captures:
//
//	/users/:id          one delimiter-bounded segment, named "id"
//	/files/*path        the remainder of the path, delimiters included
//	/api/:res{/:id}     "{...}" marks a sub-sequence as optional
//	/posts/:id(int)     a macro constraint on the capture
//
// An optional group is present or absent as a whole: its literal text
// never matches without its captures. A bare "*" receives a synthetic
// positional name ("0", "1", ...). Available macros: uuid, int, float,
// slug, alpha, alphanum, date, hex. Raw regular expressions are not
// accepted in patterns.
//
// # Matching Options
//
// Options are set on the router before registration and apply to every
// route compiled through it:
//
//	r := route.NewRouter().
//	    CaseSensitive(true).   // default false
//	    MatchEnd(false).       // default true: consume the whole path
//	    TrailingSlash(false).  // default true: tolerate one trailing "/"
//	    Delimiter('.')         // default '/'
//
// # Dispatch Semantics
//
// Routes are tried strictly in registration order; the first route whose
// verb and pattern both accept the request wins. No specificity ranking
// is applied. A route registered with All matches every verb, and a GET
// route also accepts HEAD requests. On a match the decoded captures and
// the route's original pattern are written to the request Context:
//
//	c.Params()    // map of name -> decoded value
//	c.Param("id") // one capture, with presence flag
//	c.RoutePath() // the pattern string as registered
//
// Captured values are percent-decoded. When the same name is declared in
// several optional branches, the branch that actually matched supplies the
// value; names whose branch was not taken are absent rather than empty.
//
// # Handler Chains
//
// A route takes one or more handlers. Each handler receives the next
// continuation and decides whether to respond or continue:
//
//	r.Get("/admin", requireAuth, adminHome)
//
//	func requireAuth(c *route.Context, next route.Next) error {
//	    if !authorized(c.Request) {
//	        c.Text(http.StatusForbidden, "forbidden")
//	        return nil
//	    }
//	    return next()
//	}
//
// The terminal next of a matched chain is the continuation supplied to
// Dispatch: in ServeHTTP that produces a 404, while a router embedded via
// Middleware hands the request back to the outer chain. Router.Use
// registers handlers that run before dispatch on every request.
//
// # Host Integration
//
// Middleware returns the router as a single Handler so it can participate
// in a larger pipeline; requests matching no route flow through to the
// outer continuation untouched:
//
//	outer := []route.Handler{logging, r.Middleware(), fallback}
//
// # Registration Errors
//
// A malformed pattern or a registration without handlers fails
// synchronously and leaves the registry unchanged. Handle returns the
// error; the chainable verb methods panic on it, as registration-time
// mistakes are programming errors. Match failures at request time are
// silent and allocation-free. Errors wrap ErrBadPattern and ErrNoHandlers
// for errors.Is checks.
//
// # Request Binding and Responses
//
// The Context offers strict request-body decoding (BindJSON, BindXML) and
// response writers (JSON, XML, Text):
//
//	var req CreateUserRequest
//	if err := c.BindJSON(&req); err != nil {
//	    c.Text(http.StatusBadRequest, err.Error())
//	    return nil
//	}
//	c.JSON(http.StatusOK, resp)
package route
