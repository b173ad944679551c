package routehandlers

import (
	"net/http"
	"time"

	"github.com/pchchv/golog"

	"github.com/pathline/pathline/route"
)

// LoggerConfig configures the Logger handler behaviour.
type LoggerConfig struct {
	// LogFunc overrides the log sink. It receives a printf-style format
	// and arguments. Defaults to golog.Info.
	LogFunc func(format string, args ...interface{})
}

// Logger returns a handler that logs one line per request: method, path,
// response status, and duration. The status is observed by wrapping the
// response writer for the rest of the chain.
func Logger(cfg LoggerConfig) route.Handler {
	logFunc := cfg.LogFunc
	if logFunc == nil {
		logFunc = golog.Info
	}

	return func(c *route.Context, next route.Next) error {
		start := time.Now()

		sw := &statusWriter{ResponseWriter: c.Writer}
		c.Writer = sw

		err := next()

		logFunc("%s %s %d %s", c.Request.Method, c.Request.URL.Path, sw.Status(), time.Since(start))

		return err
	}
}

// statusWriter records the first status code written to the response.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// Status returns the recorded status code, defaulting to 200 when the
// chain wrote a body without an explicit WriteHeader call, and when no
// response was written at all.
func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
