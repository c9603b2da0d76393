// Package main is the entry point for the seriesgen CLI.
//
// seriesgen generates batches of API route modules and UI pages from the
// Cartesian product of configured word lists, and splices the matching
// import and registration lines into the route aggregator.
//
// Commands: generate, splice, plan, series, init.
//
// For detailed usage information, run:
//
//	seriesgen --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rakuda/seriesgen/cmd/seriesgen/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
