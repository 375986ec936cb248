package device

import (
	"context"
	"net"
	"time"

	"github.com/orca-repos/orca-sub012/internal/adapters/ssh"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

var _ ports.Device = (*Remote)(nil)

// Remote is a Linux device reached over SSH.
type Remote struct {
	cfg         domain.DeviceConfig
	pool        *ssh.Pool
	killTimeout time.Duration
	signals     *ssh.SignalOperation
}

// NewRemote creates a device whose processes share connections from pool.
func NewRemote(cfg domain.DeviceConfig, pool *ssh.Pool, killTimeout time.Duration) *Remote {
	return &Remote{
		cfg:         cfg,
		pool:        pool,
		killTimeout: killTimeout,
		signals:     ssh.NewSignalOperation(pool, cfg.SSH),
	}
}

func (d *Remote) ID() string { return d.cfg.ID }

func (d *Remote) DisplayName() string {
	if d.cfg.Name == "" {
		return d.cfg.SSH.String()
	}
	return d.cfg.Name
}

func (d *Remote) Type() domain.DeviceType { return domain.SSHDevice }

func (d *Remote) CanCreateProcess() bool { return true }

func (d *Remote) CreateProcess() ports.DeviceProcess {
	return ssh.NewProcess(d.pool, d.cfg.SSH, d.signals, d.killTimeout)
}

func (d *Remote) SignalOperation() ports.SignalOperation { return d.signals }

func (d *Remote) FreePorts() domain.PortList { return d.cfg.FreePorts }

func (d *Remote) PortsGatheringMethod() ports.PortsGatheringMethod { return ProcNetMethod{} }

func (d *Remote) SSHParameters() domain.SSHParameters { return d.cfg.SSH }

func (d *Remote) ToolControlHost() string { return d.cfg.SSH.Host }

// DialContext opens addr through a tunnel of a pooled connection.
func (d *Remote) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return d.pool.DialContext(ctx, d.cfg.SSH, network, addr)
}

// ForwardsChannels reports whether debug channels must be tunneled to the host.
func (d *Remote) ForwardsChannels() bool { return d.cfg.ForwardChannels }
