package main

import (
	"fmt"
	"net/http"

	"github.com/exturl/exturl/internal/endpoint"
	exturl "github.com/exturl/exturl/lib-exturl"
)

// RunServe serves the status of the default handler registry.
func (cmd *ExturlCommand) RunServe() (exitCode int) {
	logger := cmd.Logger()

	disc, err := cmd.Discovery()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load the discovery config")
		return 1
	}

	logger.Info().
		Int("port", cmd.ListenPort).
		Strs("namespaces", disc.Namespaces()).
		Strs("schemes", exturl.DefaultRegistry.Schemes()).
		Msg("starting status endpoint")

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cmd.ListenPort),
		Handler: endpoint.New(exturl.DefaultRegistry),
	}
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("status endpoint stopped")
		return 1
	}
	return 0
}
