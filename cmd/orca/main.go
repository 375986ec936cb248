// Package main is the entry point for the orca build orchestrator.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/cmd/orca/commands"
	"github.com/orca-repos/orca-sub012/internal/app"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	_ "github.com/orca-repos/orca-sub012/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := components.App.Close(); err != nil {
			components.Logger.Warn("shutdown: " + err.Error())
		}
	}()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		// The output pane already reported the failed step or worker.
		if errors.Is(err, domain.ErrBuildExecutionFailed) || errors.Is(err, domain.ErrRunFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
