package routehandlers

import (
	"net/http"

	"github.com/pathline/pathline/route"
)

// RecoveryConfig configures the Recovery handler behaviour.
type RecoveryConfig struct {
	// LogFunc is an optional callback invoked with the request context and
	// the recovered value when a panic occurs. When nil, no logging is
	// performed.
	LogFunc func(c *route.Context, err any)
}

// Recovery returns a handler that recovers from panics in downstream
// handlers. When a panic occurs it returns 500 Internal Server Error to
// the client and optionally invokes LogFunc.
func Recovery(cfg RecoveryConfig) route.Handler {
	return func(c *route.Context, next route.Next) (err error) {
		defer func() {
			if rv := recover(); rv != nil {
				if cfg.LogFunc != nil {
					cfg.LogFunc(c, rv)
				}

				http.Error(c.Writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				err = nil
			}
		}()

		return next()
	}
}
