// Package device provides the desktop and SSH devices processes run on.
package device

import (
	"context"
	"net"
	"runtime"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// DefaultDesktopPorts are handed out when the desktop device declares none.
const DefaultDesktopPorts = "30000-31999"

var _ ports.Device = (*Desktop)(nil)

// Desktop is the local machine.
type Desktop struct {
	name      string
	freePorts domain.PortList
	launchers ports.LauncherFactory
	signals   *LocalSignalOperation
}

// NewDesktop creates the desktop device. A nil cfg uses the defaults.
// Processes are run by launchers of the given factory.
func NewDesktop(cfg *domain.DeviceConfig, launchers ports.LauncherFactory) *Desktop {
	d := &Desktop{
		name:      "Local PC",
		launchers: launchers,
		signals:   &LocalSignalOperation{},
	}
	if cfg != nil && cfg.Name != "" {
		d.name = cfg.Name
	}
	if cfg != nil {
		d.freePorts = cfg.FreePorts
	}
	if !d.freePorts.HasMore() {
		d.freePorts, _ = domain.ParsePortList(DefaultDesktopPorts)
	}
	return d
}

// ID returns domain.DesktopDeviceID.
func (d *Desktop) ID() string { return domain.DesktopDeviceID }

// DisplayName returns the configured name.
func (d *Desktop) DisplayName() string { return d.name }

// Type returns domain.DesktopDevice.
func (d *Desktop) Type() domain.DeviceType { return domain.DesktopDevice }

// CanCreateProcess always returns true.
func (d *Desktop) CanCreateProcess() bool { return true }

// CreateProcess returns a local process.
func (d *Desktop) CreateProcess() ports.DeviceProcess {
	return NewLocalProcess(d.launchers.NewLauncher(), d, d.signals)
}

// SignalOperation returns the local signal operation.
func (d *Desktop) SignalOperation() ports.SignalOperation { return d.signals }

// FreePorts returns the ports available for debug channels.
func (d *Desktop) FreePorts() domain.PortList { return d.freePorts }

// PortsGatheringMethod reads /proc on Linux and runs netstat elsewhere.
func (d *Desktop) PortsGatheringMethod() ports.PortsGatheringMethod {
	if runtime.GOOS == "linux" {
		return ProcNetMethod{}
	}
	return NetstatMethod{}
}

// SSHParameters points at the local host.
func (d *Desktop) SSHParameters() domain.SSHParameters {
	return domain.SSHParameters{Host: "localhost"}
}

// ToolControlHost returns the loopback host.
func (d *Desktop) ToolControlHost() string { return "localhost" }

// DialContext dials addr directly.
func (d *Desktop) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	var dialer net.Dialer
	return dialer.DialContext(ctx, network, addr)
}
