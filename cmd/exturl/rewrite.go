package main

import (
	"fmt"

	"github.com/exturl/exturl/internal/urlerr"
	exturl "github.com/exturl/exturl/lib-exturl"
)

// RunRewrite prints the canonical form of each URL argument. Invalid
// URLs are reported together after the valid ones are printed.
func (cmd *ExturlCommand) RunRewrite(args []string) (exitCode int) {
	if len(args) == 0 {
		fmt.Fprintln(cmd.ErrStream, "rewrite needs at least one URL.")
		return 2
	}

	errs := &urlerr.ListBuilder{What: exturl.ErrInvalidURL}

	for _, raw := range args {
		u, err := exturl.ParseURL(raw)
		if err != nil {
			errs.Push(err)
			continue
		}
		fmt.Fprintln(cmd.OutStream, u)
	}

	if err := errs.Build(); err != nil {
		fmt.Fprintln(cmd.ErrStream, err)
		return 1
	}
	return 0
}
