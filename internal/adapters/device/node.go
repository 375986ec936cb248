package device

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/internal/adapters/launcher"
	"github.com/orca-repos/orca-sub012/internal/adapters/settings"
	"github.com/orca-repos/orca-sub012/internal/adapters/ssh"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// NodeID is the unique identifier for the device factory Graft node.
const NodeID graft.ID = "adapter.device"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ssh.NodeID, launcher.NodeID, settings.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			pool, err := graft.Dep[*ssh.Pool](ctx)
			if err != nil {
				return nil, err
			}
			launchers, err := graft.Dep[ports.LauncherFactory](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			if f, ok := launchers.(*launcher.Factory); ok {
				launchers = f.Separated()
			}
			return NewFactory(pool, launchers, s.SSH.KillTimeout), nil
		},
	})
}
