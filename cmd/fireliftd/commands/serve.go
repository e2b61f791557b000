package commands

import (
	"github.com/spf13/cobra"

	"github.com/firelift/firelift/cmd/fireliftd/handlers"
)

// Serve returns the command that runs the HTTP server.
//
// Optional flags:
//
//	--config, -c: Path to server configuration YAML file
//
// Environment variables override file values; FIRELIFT_SERVICE_ACCOUNT
// carries the base64-encoded service credential.
func Serve() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the provisioning API server",
		Long: `Run the fireliftd HTTP server.

The server exposes:
  POST /api/setupFirebase   provision a project and return its web config
  POST /api/verifyFirebase  check a candidate config for the required fields
  GET  /health              liveness probe
  GET  /metrics             Prometheus metrics

Configuration is read from the optional YAML file given with --config,
with FIRELIFT_* environment variables layered on top.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Serve(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")

	return cmd
}
