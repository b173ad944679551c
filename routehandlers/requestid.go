package routehandlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/pathline/pathline/route"
)

type requestIDKey struct{}

// RequestIDFromContext returns the request ID stored in the context by
// RequestID. Returns an empty string if no ID is present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}

// RequestIDConfig configures the RequestID handler behaviour.
type RequestIDConfig struct {
	// HeaderName overrides the header used to propagate the request ID.
	// Defaults to "X-Request-ID" when empty.
	HeaderName string

	// GenerateFunc is an optional callback that returns a new unique ID.
	// It receives the request context, allowing ID generation based on
	// request data. Defaults to GenerateUUIDv4.
	GenerateFunc func(c *route.Context) string

	// TrustIncoming, when true, reuses an existing request ID from the
	// incoming request header instead of generating a new one.
	TrustIncoming bool
}

// RequestID returns a handler that generates or propagates a request ID
// header. The ID is set on both the request (for downstream handlers) and
// the response (for the caller).
func RequestID(cfg RequestIDConfig) route.Handler {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = "X-Request-ID"
	}

	generate := cfg.GenerateFunc
	if generate == nil {
		generate = GenerateUUIDv4
	}

	trustIncoming := cfg.TrustIncoming

	return func(c *route.Context, next route.Next) error {
		id := ""
		if trustIncoming {
			id = c.Request.Header.Get(headerName)
		}

		if id == "" {
			id = generate(c)
		}

		if id != "" {
			c.Request.Header.Set(headerName, id)
			c.Writer.Header().Set(headerName, id)
			c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDKey{}, id))
		}

		return next()
	}
}

// GenerateUUIDv4 returns a new UUID v4 string.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc9562#section-5.4
func GenerateUUIDv4(_ *route.Context) string {
	return uuid.New().String()
}

// GenerateUUIDv7 returns a new UUID v7 string. UUIDs are time-ordered:
// IDs generated later sort lexicographically after earlier ones.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc9562#section-5.7
func GenerateUUIDv7(_ *route.Context) string {
	return uuid.Must(uuid.NewV7()).String()
}
