package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/internal/adapters/config"        //nolint:depguard // Wired in app layer
	"github.com/orca-repos/orca-sub012/internal/adapters/device"        //nolint:depguard // Wired in app layer
	"github.com/orca-repos/orca-sub012/internal/adapters/extracompiler" //nolint:depguard // Wired in app layer
	"github.com/orca-repos/orca-sub012/internal/adapters/logger"        //nolint:depguard // Wired in app layer
	"github.com/orca-repos/orca-sub012/internal/adapters/outputpane"    //nolint:depguard // Wired in app layer
	"github.com/orca-repos/orca-sub012/internal/adapters/prompt"        //nolint:depguard // Wired in app layer
	"github.com/orca-repos/orca-sub012/internal/adapters/ssh"           //nolint:depguard // Wired in app layer
	"github.com/orca-repos/orca-sub012/internal/adapters/steps"         //nolint:depguard // Wired in app layer
	"github.com/orca-repos/orca-sub012/internal/adapters/tasks"         //nolint:depguard // Wired in app layer
	"github.com/orca-repos/orca-sub012/internal/adapters/watcher"       //nolint:depguard // Wired in app layer
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/orca-repos/orca-sub012/internal/engine/buildmanager"
	"github.com/orca-repos/orca-sub012/internal/engine/runcontrol"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			steps.NodeID,
			device.NodeID,
			buildmanager.NodeID,
			runcontrol.NodeID,
			extracompiler.NodeID,
			outputpane.NodeID,
			tasks.NodeID,
			prompt.NodeID,
			watcher.NodeID,
			ssh.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

//nolint:cyclop // one lookup per collaborator
func runAppNode(ctx context.Context) (*App, error) {
	var (
		d   Deps
		err error
	)
	if d.Loader, err = graft.Dep[ports.WorkspaceLoader](ctx); err != nil {
		return nil, err
	}
	if d.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	lists, err := graft.Dep[*steps.Factory](ctx)
	if err != nil {
		return nil, err
	}
	d.Model = lists.Model()
	if d.Devices, err = graft.Dep[*device.Factory](ctx); err != nil {
		return nil, err
	}
	if d.Builds, err = graft.Dep[*buildmanager.Factory](ctx); err != nil {
		return nil, err
	}
	if d.Runs, err = graft.Dep[*runcontrol.Factory](ctx); err != nil {
		return nil, err
	}
	if d.Compilers, err = graft.Dep[*extracompiler.Factory](ctx); err != nil {
		return nil, err
	}
	if d.Pane, err = graft.Dep[*outputpane.Pane](ctx); err != nil {
		return nil, err
	}
	if d.Tasks, err = graft.Dep[*tasks.Hub](ctx); err != nil {
		return nil, err
	}
	if d.Prompter, err = graft.Dep[*prompt.Prompter](ctx); err != nil {
		return nil, err
	}
	if d.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}
	if d.Pool, err = graft.Dep[*ssh.Pool](ctx); err != nil {
		return nil, err
	}
	return New(d), nil
}
