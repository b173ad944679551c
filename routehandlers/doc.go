// Package routehandlers provides middleware handlers for the route
// package's handler chains.
//
// # Recovery
//
// Recovery converts panics in downstream handlers into 500 Internal
// Server Error responses, optionally logging the recovered value:
//
//	r.Use(routehandlers.Recovery(routehandlers.RecoveryConfig{
//	    LogFunc: func(c *route.Context, err any) {
//	        log.Printf("panic serving %s: %v", c.Request.URL.Path, err)
//	    },
//	}))
//
// # Request ID
//
// RequestID generates or propagates a request ID header (RFC 9562 UUIDs
// by default) and stores it in the request context:
//
//	r.Use(routehandlers.RequestID(routehandlers.RequestIDConfig{
//	    TrustIncoming: true,
//	}))
//
//	id := routehandlers.RequestIDFromContext(c.Request.Context())
//
// # Logger
//
// Logger writes one line per request with method, path, status, and
// duration:
//
//	r.Use(routehandlers.Logger(routehandlers.LoggerConfig{}))
//
// # Route List
//
// RouteList serves the router's registered route table as YAML or JSON,
// built once and cached:
//
//	r.Get("/debug/routes", routehandlers.RouteList(r, routehandlers.RouteListConfig{
//	    Format: "json",
//	}))
package routehandlers
