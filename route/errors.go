package route

import "errors"

// ErrBadPattern is wrapped by every pattern compile error. The returned
// error always carries the offending pattern text.
var ErrBadPattern = errors.New("route: syntax error in pattern")

// ErrNoHandlers is wrapped by registration errors for routes registered
// without any handler. The returned error carries the verb (or "ALL")
// and the pattern text.
var ErrNoHandlers = errors.New("route: no handlers")
