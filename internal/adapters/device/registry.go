package device

import (
	"time"

	"github.com/orca-repos/orca-sub012/internal/adapters/ssh"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

var _ ports.DeviceRegistry = (*Registry)(nil)

// Registry holds the devices of a workspace. The desktop is always present.
type Registry struct {
	desktop *Desktop
	devices map[string]ports.Device
}

// Factory builds registries for loaded workspaces.
type Factory struct {
	pool        *ssh.Pool
	launchers   ports.LauncherFactory
	killTimeout time.Duration
}

// NewFactory creates a Factory. Remote devices share pool.
func NewFactory(pool *ssh.Pool, launchers ports.LauncherFactory, killTimeout time.Duration) *Factory {
	return &Factory{pool: pool, launchers: launchers, killTimeout: killTimeout}
}

// Registry returns the devices declared by ws.
func (f *Factory) Registry(ws *domain.Workspace) *Registry {
	r := &Registry{devices: make(map[string]ports.Device)}
	var desktopCfg *domain.DeviceConfig
	if ws != nil {
		desktopCfg = ws.Devices[domain.DesktopDeviceID]
	}
	r.desktop = NewDesktop(desktopCfg, f.launchers)
	r.devices[domain.DesktopDeviceID] = r.desktop
	if ws == nil {
		return r
	}
	for id, cfg := range ws.Devices {
		if cfg.Type != domain.SSHDevice {
			continue
		}
		c := *cfg
		c.ID = id
		r.devices[id] = NewRemote(c, f.pool, f.killTimeout)
	}
	return r
}

// Device returns the device with the given id.
func (r *Registry) Device(id string) (ports.Device, bool) {
	d, ok := r.devices[id]
	return d, ok
}

// DefaultDevice returns the desktop.
func (r *Registry) DefaultDevice() ports.Device { return r.desktop }
