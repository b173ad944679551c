package routehandlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pathline/pathline/route"
)

// RouteListConfig configures the RouteList handler behaviour.
type RouteListConfig struct {
	// Format selects the serialization: "yaml" (default) or "json".
	Format string
}

// RouteList returns a handler serving the router's registered route table.
// The table is serialized once on first request and cached, so routes
// registered afterwards do not appear:
//
//	r.Get("/debug/routes", routehandlers.RouteList(r, routehandlers.RouteListConfig{}))
func RouteList(r *route.Router, cfg RouteListConfig) route.Handler {
	var (
		once        sync.Once
		data        []byte
		contentType string
		buildErr    error
	)

	return func(c *route.Context, _ route.Next) error {
		once.Do(func() {
			infos := r.Routes()
			switch cfg.Format {
			case "", "yaml":
				contentType = "application/x-yaml"
				data, buildErr = yaml.Marshal(infos)
			case "json":
				contentType = "application/json"
				data, buildErr = json.MarshalIndent(infos, "", "  ")
			default:
				buildErr = fmt.Errorf("routehandlers: unknown route list format %q", cfg.Format)
			}
		})

		if buildErr != nil {
			http.Error(c.Writer, "failed to serialize route list", http.StatusInternalServerError)
			return nil
		}

		c.Writer.Header().Set("Content-Type", contentType)
		c.Writer.WriteHeader(http.StatusOK)
		_, _ = c.Writer.Write(data)

		return nil
	}
}
