package device_test

import (
	"testing"
	"time"

	"github.com/orca-repos/orca-sub012/internal/adapters/device"
	"github.com/orca-repos/orca-sub012/internal/adapters/ssh"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newFactory(t *testing.T) *device.Factory {
	t.Helper()
	ctrl := gomock.NewController(t)
	pool, err := ssh.NewPool(mocks.NewMockLogger(ctrl), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })
	return device.NewFactory(pool, mocks.NewMockLauncherFactory(ctrl), 5*time.Second)
}

func TestRegistry_DefaultsToDesktop(t *testing.T) {
	r := newFactory(t).Registry(nil)

	d := r.DefaultDevice()
	assert.Equal(t, domain.DesktopDeviceID, d.ID())
	assert.Equal(t, "Local PC", d.DisplayName())
	assert.Equal(t, domain.DesktopDevice, d.Type())
	assert.True(t, d.CanCreateProcess())
	assert.Equal(t, "localhost", d.ToolControlHost())
	assert.Equal(t, 2000, d.FreePorts().Count())

	got, ok := r.Device(domain.DesktopDeviceID)
	require.True(t, ok)
	assert.Same(t, d, got)

	_, ok = r.Device("board")
	assert.False(t, ok)
}

func TestRegistry_WorkspaceDevices(t *testing.T) {
	ports, err := domain.ParsePortList("10000-10001")
	require.NoError(t, err)

	ws := domain.NewWorkspace("/ws")
	ws.Devices[domain.DesktopDeviceID] = &domain.DeviceConfig{Name: "Workstation", Type: domain.DesktopDevice}
	ws.Devices["board"] = &domain.DeviceConfig{
		Type:      domain.SSHDevice,
		SSH:       domain.SSHParameters{Host: "10.0.0.2", User: "root"},
		FreePorts: ports,
	}

	r := newFactory(t).Registry(ws)

	assert.Equal(t, "Workstation", r.DefaultDevice().DisplayName())

	board, ok := r.Device("board")
	require.True(t, ok)
	assert.Equal(t, "board", board.ID())
	assert.Equal(t, "root@10.0.0.2:22", board.DisplayName())
	assert.Equal(t, domain.SSHDevice, board.Type())
	assert.Equal(t, "10.0.0.2", board.ToolControlHost())
	assert.Equal(t, []domain.Port{10000, 10001}, board.FreePorts().Ports())
	assert.IsType(t, device.ProcNetMethod{}, board.PortsGatheringMethod())
	assert.IsType(t, &ssh.Process{}, board.CreateProcess())
}
