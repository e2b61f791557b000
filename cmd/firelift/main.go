// Package main is the entry point for the firelift CLI.
//
// firelift is the client companion to fireliftd: it resolves the active
// app configuration, imports pasted console snippets, and requests a fresh
// project from the server when nothing is configured yet.
//
// Commands: setup, config, version.
//
// For detailed usage information, run:
//
//	firelift --help
package main

import (
	"fmt"
	"os"

	"github.com/firelift/firelift/cmd/firelift/commands"
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
