// Package main is the entry point for the rapids-build-backend proxy.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/rapidsai/rapids-build-backend/cmd/rapids-build-backend/commands"
	"github.com/rapidsai/rapids-build-backend/internal/app"
	_ "github.com/rapidsai/rapids-build-backend/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, _, err := graft.ExecuteFor[*app.App](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(application)
	if err := cli.Execute(ctx); err != nil {
		// zerr prints a full error report with stack trace and metadata
		// when rendered with %+v.
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
