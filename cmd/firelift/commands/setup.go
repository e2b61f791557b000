package commands

import (
	"github.com/spf13/cobra"

	"github.com/firelift/firelift/cmd/firelift/handlers"
)

// Setup returns the command that provisions a project through fireliftd.
//
// Optional flags:
//
//	--server, -s: Base URL of the fireliftd server
//	--name, -n:   Display name for the new project
//	--force:      Provision even when a configuration is already resolved
func Setup() *cobra.Command {
	var serverURL string
	var projectName string
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Provision a project and store its configuration",
		Long: `Request a fresh Firebase-backed project from the fireliftd server.

If a configuration is already resolved (from the environment or from a
previous setup or import), nothing is provisioned unless --force is given.
The returned configuration is persisted locally and used by later commands.

Examples:
  # Provision using the local server
  firelift setup

  # Provision against a remote server with a custom project name
  firelift setup -s https://firelift.example.com -n "My App"

  # Replace an existing configuration with a fresh project
  firelift setup --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Setup(cmd.Context(), serverURL, projectName, force)
		},
	}

	cmd.Flags().StringVarP(&serverURL, "server", "s", handlers.DefaultServerURL, "Base URL of the fireliftd server")
	cmd.Flags().StringVarP(&projectName, "name", "n", "", "Display name for the new project")
	cmd.Flags().BoolVar(&force, "force", false, "Provision even when already configured")

	return cmd
}
