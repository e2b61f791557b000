package commands

import (
	"github.com/spf13/cobra"

	"github.com/firelift/firelift/cmd/firelift/handlers"
)

// Config returns the parent command for configuration management.
func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage the stored app configuration",
	}

	cmd.AddCommand(configShow())
	cmd.AddCommand(configImport())
	cmd.AddCommand(configVerify())
	cmd.AddCommand(configClear())

	return cmd
}

func configShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration and where it came from",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.ConfigShow()
		},
	}
}

// configImport accepts a file path, "-" for stdin, or prompts when run on
// a terminal with no argument.
func configImport() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a pasted console config snippet",
		Long: `Normalize and store an app configuration snippet.

The input may be the raw snippet copied from the console: variable
declaration, comments, unquoted keys and trailing commas are accepted.

Examples:
  # Import from a file
  firelift config import snippet.txt

  # Import from stdin
  pbpaste | firelift config import -

  # Paste interactively
  firelift config import`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return handlers.ConfigImport(cmd.Context(), path)
		},
	}
}

func configVerify() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the resolved configuration against the server",
		Long: `Submit the resolved configuration to the fireliftd server for a
schema check. No platform call is made; the server only checks that the
required identifying fields are present.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ConfigVerify(cmd.Context(), serverURL)
		},
	}

	cmd.Flags().StringVarP(&serverURL, "server", "s", handlers.DefaultServerURL, "Base URL of the fireliftd server")

	return cmd
}

func configClear() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.ConfigClear()
		},
	}
}
