// Package main provides the entry point for the recentlog CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/yarp-shell/recentlog/cmd/recentlog/cmd"
	"github.com/yarp-shell/recentlog/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit status. Failures are
// reported on stderr only.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := cmd.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		output.New(stderr).Diagnostic(err)
		return 1
	}
	return 0
}
