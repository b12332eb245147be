// Package main is the countrylist command.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/countrylist/internal/cli"
	"github.com/rshade/countrylist/internal/version"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(ctx)
}

// exitCode maps the command result to a process exit status.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(exitCode(run()))
}
