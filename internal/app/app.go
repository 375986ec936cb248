// Package app implements the application layer for orca.
package app

import (
	"errors"

	"github.com/orca-repos/orca-sub012/internal/adapters/device"
	"github.com/orca-repos/orca-sub012/internal/adapters/extracompiler"
	"github.com/orca-repos/orca-sub012/internal/adapters/outputpane"
	"github.com/orca-repos/orca-sub012/internal/adapters/prompt"
	"github.com/orca-repos/orca-sub012/internal/adapters/ssh"
	"github.com/orca-repos/orca-sub012/internal/adapters/steps"
	"github.com/orca-repos/orca-sub012/internal/adapters/tasks"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/orca-repos/orca-sub012/internal/engine/buildmanager"
	"github.com/orca-repos/orca-sub012/internal/engine/runcontrol"
	"go.trai.ch/zerr"
)

// Deps are the collaborators of an App.
type Deps struct {
	Loader    ports.WorkspaceLoader
	Logger    ports.Logger
	Model     *steps.ProjectModel
	Devices   *device.Factory
	Builds    *buildmanager.Factory
	Runs      *runcontrol.Factory
	Compilers *extracompiler.Factory
	Pane      *outputpane.Pane
	Tasks     *tasks.Hub
	Prompter  *prompt.Prompter
	Watcher   ports.Watcher
	// Pool is closed by Close. It may be nil.
	Pool *ssh.Pool
}

// App represents the main application logic.
type App struct {
	Deps
	cwd string
}

// New creates a new App instance working on the workspace found from the
// current directory.
func New(d Deps) *App {
	return &App{Deps: d, cwd: "."}
}

// WithWorkDir makes a look for the workspace from dir.
func (a *App) WithWorkDir(dir string) *App {
	a.cwd = dir
	return a
}

// GlobalOptions are the settings shared by all commands.
type GlobalOptions struct {
	JSON      bool
	AssumeYes bool
}

// Configure applies opts to the logger and the stop prompt.
func (a *App) Configure(opts GlobalOptions) {
	if l, ok := a.Logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.JSON)
	}
	if a.Prompter != nil {
		a.Prompter.SetAssumeYes(opts.AssumeYes)
	}
}

// Close releases the remote connections and the file watcher.
func (a *App) Close() error {
	var errs []error
	if a.Pool != nil {
		errs = append(errs, a.Pool.Close())
	}
	if a.Watcher != nil {
		errs = append(errs, a.Watcher.Stop())
	}
	return errors.Join(errs...)
}

// loadWorkspace reads the workspace while the project model reports parsing.
func (a *App) loadWorkspace() (*domain.Workspace, error) {
	a.Model.BeginParse()
	ws, err := a.Loader.Load(a.cwd)
	a.Model.EndParse(err == nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load workspace")
	}
	return ws, nil
}

func (a *App) projects(ws *domain.Workspace, names []string) ([]*domain.Project, error) {
	if len(names) == 0 {
		return ws.Projects(), nil
	}
	out := make([]*domain.Project, 0, len(names))
	for _, name := range names {
		p, ok := ws.Project(name)
		if !ok {
			return nil, zerr.With(domain.ErrProjectNotFound, "project", name)
		}
		out = append(out, p)
	}
	return out, nil
}

func (a *App) deviceFor(ws *domain.Workspace, t *domain.Target) (ports.Device, error) {
	registry := a.Devices.Registry(ws)
	if t == nil || t.Kit == nil || t.Kit.DeviceID == "" {
		return registry.DefaultDevice(), nil
	}
	d, ok := registry.Device(t.Kit.DeviceID)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownDevice, "device", t.Kit.DeviceID)
	}
	return d, nil
}

// report prints the collected diagnostics and any held-back output.
func (a *App) report() {
	if found := a.Tasks.Tasks(); len(found) > 0 {
		a.Pane.PrintTasks(found)
	}
	a.Pane.Flush()
}
