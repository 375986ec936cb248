package app

import (
	"context"
	"errors"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// RunOptions configuration for the Run method.
type RunOptions struct {
	// RunConfig names the run configuration. The active one is used when empty.
	RunConfig string
}

// Run builds and deploys what the run configuration of project needs, then
// runs it until the application stops or ctx is canceled.
func (a *App) Run(ctx context.Context, projectName string, opts RunOptions) error {
	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}
	p, ok := ws.Project(projectName)
	if !ok {
		return zerr.With(domain.ErrProjectNotFound, "project", projectName)
	}
	runConfig, err := runConfigurationOf(p, opts.RunConfig)
	if err != nil {
		return err
	}
	device, err := a.deviceFor(ws, runConfig.Target)
	if err != nil {
		return err
	}

	defer a.report()
	m := a.Builds.ForWorkspace(ws, a.Runs.Registry())
	err = a.drive(ctx, m, func(ctx context.Context) (int, error) {
		switch m.PotentiallyBuildForRunConfig(ctx, runConfig) {
		case domain.BuildFailed:
			return 0, zerr.With(domain.ErrBuildQueueFailed, "run_configuration", runConfig.Name)
		case domain.Building:
			return 1, nil
		default:
			return 0, nil
		}
	})
	if err != nil {
		return err
	}
	return a.runApplication(ctx, runConfig, device)
}

func runConfigurationOf(p *domain.Project, name string) (*domain.RunConfiguration, error) {
	t := p.ActiveTarget
	if t == nil {
		return nil, zerr.With(domain.ErrRunConfigNotFound, "project", p.Name)
	}
	if name == "" {
		if t.ActiveRunConfiguration == nil {
			return nil, zerr.With(domain.ErrRunConfigNotFound, "project", p.Name)
		}
		return t.ActiveRunConfiguration, nil
	}
	for _, rc := range t.RunConfigurations {
		if rc.Name == name {
			return rc, nil
		}
	}
	return nil, zerr.With(zerr.With(domain.ErrRunConfigNotFound, "project", p.Name), "run_configuration", name)
}

// runApplication drives a run control for runConfig until it has stopped and
// finished. Canceling ctx stops the application.
func (a *App) runApplication(ctx context.Context, runConfig *domain.RunConfiguration, device ports.Device) error {
	rc, err := a.Runs.ForRunConfiguration(runConfig, device)
	if err != nil {
		return err
	}
	stopped := make(chan struct{})
	var once sync.Once
	rc.OnStateChanged(func(s domain.RunControlState) {
		if s == domain.RunControlStopped {
			once.Do(func() { close(stopped) })
		}
	})

	loopCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	defer stop()

	var g errgroup.Group
	g.Go(func() error {
		return rc.Run(loopCtx)
	})
	g.Go(func() error {
		defer stop()
		rc.InitiateStart()

		var errs []error
		select {
		case <-stopped:
		case <-ctx.Done():
			rc.InitiateStop()
			<-stopped
			errs = append(errs, ctx.Err())
		}
		if rc.Failed() {
			errs = append(errs, domain.ErrRunFailed)
		}
		rc.InitiateFinish()
		errs = append(errs, rc.WaitFinished(loopCtx))
		return errors.Join(errs...)
	})
	return g.Wait()
}
