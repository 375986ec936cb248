package steps

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/internal/adapters/device"
	"github.com/orca-repos/orca-sub012/internal/adapters/launcher"
	"github.com/orca-repos/orca-sub012/internal/adapters/telemetry/progrock"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// NodeID is the unique identifier for the step list factory Graft node.
const NodeID graft.ID = "adapter.steps"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{launcher.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			launchers, err := graft.Dep[ports.LauncherFactory](ctx)
			if err != nil {
				return nil, err
			}
			progress, err := graft.Dep[ports.Progress](ctx)
			if err != nil {
				return nil, err
			}
			if f, ok := launchers.(*launcher.Factory); ok {
				launchers = f.Separated()
			}
			return NewFactory(launchers, device.NewDesktop(nil, launchers), progress, NewProjectModel()), nil
		},
	})
}
