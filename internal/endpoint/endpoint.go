// Package endpoint serves the status of a handler registry over HTTP.
package endpoint

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
)

// Registry is the view of the handler registry the endpoint exposes.
type Registry interface {
	// Schemes returns the registered schemes in sorted order.
	Schemes() []string

	// FactoryCount returns how many factories serve a scheme.
	FactoryCount(scheme string) int
}

// New creates the HTTP handler of the status endpoint.
func New(r Registry) http.Handler {
	m := http.NewServeMux()

	m.HandleFunc("/status.json", StatusJSONEndpoint(r))
	m.HandleFunc("/metrics", MetricsEndpoint())
	m.HandleFunc("/healthz", HealthzEndpoint(r))

	m.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, "/status.json", http.StatusFound)
		} else {
			http.NotFound(w, r)
		}
	})

	return gziphandler.GzipHandler(m)
}
