package main

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/exturl/exturl/internal/urlerr"
	exturl "github.com/exturl/exturl/lib-exturl"
)

type resolvedURL struct {
	Input        string   `json:"input"`
	Canonical    string   `json:"canonical"`
	Scheme       string   `json:"scheme"`
	SubProtocols []string `json:"sub_protocols"`
	Authority    string   `json:"authority,omitempty"`
	Path         string   `json:"path,omitempty"`
	Query        string   `json:"query,omitempty"`
	Fragment     string   `json:"fragment,omitempty"`
}

// RunResolve prints the parsed fields of each URL argument as JSON,
// one object per line. Invalid URLs are reported together after the
// valid ones are printed.
func (cmd *ExturlCommand) RunResolve(args []string) (exitCode int) {
	if len(args) == 0 {
		fmt.Fprintln(cmd.ErrStream, "resolve needs at least one URL.")
		return 2
	}

	enc := json.NewEncoder(cmd.OutStream)
	errs := &urlerr.ListBuilder{What: exturl.ErrInvalidURL}

	for _, raw := range args {
		u, err := exturl.ParseURL(raw)
		if err != nil {
			errs.Push(err)
			continue
		}

		enc.Encode(resolvedURL{
			Input:        raw,
			Canonical:    u.String(),
			Scheme:       u.Scheme,
			SubProtocols: u.SubProtocols(),
			Authority:    u.ResolveAuthority(),
			Path:         u.ResolvePath(),
			Query:        u.RawQuery,
			Fragment:     u.Fragment,
		})
	}

	if err := errs.Build(); err != nil {
		fmt.Fprintln(cmd.ErrStream, err)
		return 1
	}
	return 0
}
