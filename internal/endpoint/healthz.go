package endpoint

import (
	"fmt"
	"net/http"
)

// HealthzEndpoint reports whether the registry serves at least one
// scheme.
func HealthzEndpoint(r Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=UTF-8")

		if len(r.Schemes()) == 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintln(w, "NO HANDLER")
			return
		}
		fmt.Fprintln(w, "HEALTHY")
	}
}
