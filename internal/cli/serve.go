package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routekit/elbow/internal/api"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing API over HTTP",
		Long: `Serve the routing API over HTTP.

Endpoints:
  POST /api/v1/route      route a single request, returns the full result
  POST /api/v1/route/svg  route a single request, returns rendered SVG
  GET  /healthz           health check

The server shares the local route cache with the CLI commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			server := api.NewServer(addr, runner, c.Logger)
			return server.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
