// Package main is the entry point for the fireliftd server.
//
// fireliftd provisions Firebase-backed cloud projects on demand: it creates
// a project under the configured service identity, activates Firebase,
// registers a web app and returns the app's client configuration over a
// small JSON API.
//
// For detailed usage information, run:
//
//	fireliftd --help
package main

import (
	"fmt"
	"os"

	"github.com/firelift/firelift/cmd/fireliftd/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
