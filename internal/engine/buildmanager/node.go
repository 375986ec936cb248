package buildmanager

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/internal/adapters/outputpane"
	"github.com/orca-repos/orca-sub012/internal/adapters/prompt"
	"github.com/orca-repos/orca-sub012/internal/adapters/settings"
	"github.com/orca-repos/orca-sub012/internal/adapters/steps"
	"github.com/orca-repos/orca-sub012/internal/adapters/tasks"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// NodeID is the unique identifier for the build manager factory Graft node.
const NodeID graft.ID = "engine.buildmanager"

// Factory creates managers for loaded workspaces.
type Factory struct {
	settings domain.BuildSettings
	lists    ports.StepListFactory
	output   ports.OutputSink
	tasks    ports.TaskSink
	prompter ports.StopPrompter
}

// NewFactory creates a Factory.
func NewFactory(
	settings domain.BuildSettings,
	lists ports.StepListFactory,
	output ports.OutputSink,
	tasks ports.TaskSink,
	prompter ports.StopPrompter,
) *Factory {
	return &Factory{settings: settings, lists: lists, output: output, tasks: tasks, prompter: prompter}
}

// ForWorkspace returns a manager building the projects of ws.
func (f *Factory) ForWorkspace(ws *domain.Workspace, runs ports.RunControlRegistry, opts ...Option) *Manager {
	opts = append([]Option{WithStopPrompter(f.prompter), WithRunControls(runs)}, opts...)
	return New(f.settings, ws, f.lists, f.output, f.tasks, opts...)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, steps.NodeID, outputpane.NodeID, tasks.NodeID, prompt.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			lists, err := graft.Dep[*steps.Factory](ctx)
			if err != nil {
				return nil, err
			}
			pane, err := graft.Dep[*outputpane.Pane](ctx)
			if err != nil {
				return nil, err
			}
			hub, err := graft.Dep[*tasks.Hub](ctx)
			if err != nil {
				return nil, err
			}
			prompter, err := graft.Dep[*prompt.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(s.Build, lists, pane, hub, prompter), nil
		},
	})
}
