package app

import (
	"context"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/engine/buildmanager"
	"golang.org/x/sync/errgroup"
)

// BuildKind selects what Build queues.
type BuildKind int

const (
	// KindBuild queues the build lists.
	KindBuild BuildKind = iota
	// KindClean queues the clean lists.
	KindClean
	// KindRebuild queues the clean lists followed by the build lists.
	KindRebuild
	// KindDeploy queues the deploy lists, after the build lists unless
	// building before deploying is switched off.
	KindDeploy
)

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// AllConfigs uses every build configuration instead of the active one.
	AllConfigs bool
	// WithDeps adds the projects the named projects depend on.
	WithDeps bool
}

// Build queues kind for the named projects, or every project when no name is
// given, and waits until the queue has finished.
func (a *App) Build(ctx context.Context, kind BuildKind, names []string, opts BuildOptions) error {
	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}
	projects, err := a.projects(ws, names)
	if err != nil {
		return err
	}
	sel := domain.ConfigSelectionActive
	if opts.AllConfigs {
		sel = domain.ConfigSelectionAll
	}

	m := a.Builds.ForWorkspace(ws, a.Runs.Registry())
	defer a.report()
	return a.drive(ctx, m, func(ctx context.Context) (int, error) {
		if len(names) == 0 || opts.WithDeps {
			if projects, err = m.DependencyOrder(projects); err != nil {
				return 0, err
			}
		}
		var n int
		switch kind {
		case KindClean:
			n, err = m.CleanProjects(ctx, projects, sel)
		case KindRebuild:
			n, err = m.RebuildProjects(ctx, projects, sel)
		case KindDeploy:
			n, err = m.DeployProjects(ctx, projects)
		default:
			n, err = m.BuildProjects(ctx, projects, sel)
		}
		if n == 0 && err == nil {
			a.Logger.Info("nothing to do")
		}
		return n, err
	})
}

// drive runs the event loop of m while enqueue queues work, then waits for the
// queue to finish. Canceling ctx cancels the queue; the loop itself keeps
// running until the canceled steps have returned.
func (a *App) drive(ctx context.Context, m *buildmanager.Manager, enqueue func(ctx context.Context) (int, error)) error {
	finished := make(chan bool, 1)
	m.AddObserver(queueObserver{finished: finished})

	loopCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	defer stop()

	var g errgroup.Group
	g.Go(func() error {
		return m.Run(loopCtx)
	})
	g.Go(func() error {
		defer stop()
		n, err := enqueue(ctx)
		if err != nil || n == 0 {
			return err
		}
		select {
		case ok := <-finished:
			if !ok {
				return domain.ErrBuildExecutionFailed
			}
			return nil
		case <-ctx.Done():
			m.Cancel()
			<-finished
			return ctx.Err()
		}
	})
	return g.Wait()
}

// queueObserver forwards the end of a queue run.
type queueObserver struct {
	finished chan bool
}

func (o queueObserver) BuildStateChanged(*domain.Project) {}

func (o queueObserver) BuildQueueFinished(success bool) {
	select {
	case o.finished <- success:
	default:
	}
}

func (o queueObserver) ProgressChanged(int, int, string) {}
