package extracompiler

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/internal/adapters/launcher"
	"github.com/orca-repos/orca-sub012/internal/adapters/logger"
	"github.com/orca-repos/orca-sub012/internal/adapters/tasks"
	"github.com/orca-repos/orca-sub012/internal/adapters/telemetry"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// NodeID is the unique identifier for the extra compiler factory Graft node.
const NodeID graft.ID = "adapter.extracompiler"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{launcher.NodeID, tasks.NodeID, telemetry.TracerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			launchers, err := graft.Dep[ports.LauncherFactory](ctx)
			if err != nil {
				return nil, err
			}
			hub, err := graft.Dep[*tasks.Hub](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			if f, ok := launchers.(*launcher.Factory); ok {
				launchers = f.Separated()
			}
			return NewFactory(launchers, hub, tracer, log), nil
		},
	})
}
