package app

import (
	"context"
)

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	// Watch re-runs the generators of changed sources until ctx is canceled.
	Watch bool
}

// Generate runs every extra compiler of the workspace once.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}
	set, err := a.Compilers.ForWorkspace(ws, a.Devices.Registry(ws).DefaultDevice())
	if err != nil {
		return err
	}
	defer a.report()

	// Failures are logged by the set; in watch mode the next change retries.
	if err := set.RunAll(ctx); err != nil && !opts.Watch {
		return err
	}
	if !opts.Watch {
		return nil
	}
	a.Logger.Info("watching " + ws.Root)
	return set.Watch(ctx, a.Watcher, ws.Root)
}
