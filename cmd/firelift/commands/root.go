// Package commands defines the firelift CLI command structure and flag
// bindings. Command execution is delegated to handler functions in the
// handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the firelift CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "firelift",
		Short: "Manage the app configuration of a Firebase-backed project",
	}

	cmd.AddCommand(Setup())
	cmd.AddCommand(Config())
	cmd.AddCommand(Version())

	return cmd
}
