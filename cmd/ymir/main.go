// Package main is the entry point for the ymir CLI.
//
// ymir manages the cloud resources of serverless WordPress projects:
// networks, database servers, cache clusters, certificates, DNS zones and
// email identities. Commands resolve the resources they need from their
// arguments and options, prompt when those are missing, and offer to
// create what does not exist yet.
//
// For detailed usage information, run:
//
//	ymir --help
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/imamik/ymir/cmd/ymir/commands"
	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/resource"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.Root().ExecuteContext(ctx)
	stop()

	os.Exit(exitCode(err, os.Stderr))
}

// exitCode reports err on stderr and maps it to the process exit status.
// A cancelled confirmation is a normal exit.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil, errors.Is(err, resource.ErrCancelled):
		return 0
	case errors.Is(err, console.ErrAborted), errors.Is(err, context.Canceled):
		return 130
	default:
		_, _ = fmt.Fprintln(stderr, console.ErrorStyle.Render(err.Error()))
		return 1
	}
}
