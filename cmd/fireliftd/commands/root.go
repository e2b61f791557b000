// Package commands defines the fireliftd command structure and flag
// bindings. Command execution is delegated to handler functions in the
// handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the fireliftd server.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fireliftd",
		Short: "Provision Firebase projects over a JSON API",
	}

	cmd.AddCommand(Serve())
	cmd.AddCommand(Version())

	return cmd
}
