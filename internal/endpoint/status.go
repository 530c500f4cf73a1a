package endpoint

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"

	"github.com/exturl/exturl/internal/meta"
)

type schemeStatus struct {
	Scheme    string `json:"scheme"`
	Factories int    `json:"factories"`
}

type statusReport struct {
	Version   string         `json:"version"`
	StartedAt time.Time      `json:"started_at"`
	Uptime    string         `json:"uptime"`
	Schemes   []schemeStatus `json:"schemes"`
}

func makeReport(r Registry, startedAt time.Time) statusReport {
	schemes := r.Schemes()

	ss := make([]schemeStatus, 0, len(schemes))
	for _, s := range schemes {
		ss = append(ss, schemeStatus{
			Scheme:    s,
			Factories: r.FactoryCount(s),
		})
	}

	return statusReport{
		Version:   meta.Version,
		StartedAt: startedAt,
		Uptime:    humanize.Time(startedAt),
		Schemes:   ss,
	}
}

// StatusJSONEndpoint reports the registered schemes as JSON.
func StatusJSONEndpoint(r Registry) http.HandlerFunc {
	startedAt := time.Now()

	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")

		json.NewEncoder(w).Encode(makeReport(r, startedAt))
	}
}
