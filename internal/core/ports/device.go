package ports

import (
	"context"
	"net"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
)

//go:generate mockgen -source=device.go -destination=mocks/mock_device.go -package=mocks

// Device is a machine that can run processes.
type Device interface {
	// ID returns the unique device id.
	ID() string
	// DisplayName returns the human-readable device name.
	DisplayName() string
	// Type returns the kind of device.
	Type() domain.DeviceType
	// CanCreateProcess reports whether CreateProcess is supported.
	CanCreateProcess() bool
	// CreateProcess returns a new, idle process for this device.
	CreateProcess() DeviceProcess
	// SignalOperation returns the operation used to interrupt or kill processes.
	SignalOperation() SignalOperation
	// FreePorts returns the ports that may be handed out to debug channels.
	FreePorts() domain.PortList
	// PortsGatheringMethod returns the method used to list used ports, or nil.
	PortsGatheringMethod() PortsGatheringMethod
	// SSHParameters returns the connection parameters of the device.
	SSHParameters() domain.SSHParameters
	// ToolControlHost returns the host tools use to reach services on the device.
	ToolControlHost() string
	// DialContext opens a connection to addr as seen from the device.
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// DeviceRegistry resolves device ids.
type DeviceRegistry interface {
	// Device returns the device with the given id.
	Device(id string) (Device, bool)
	// DefaultDevice returns the local desktop device.
	DefaultDevice() Device
}

// ProcessListener receives the events of a DeviceProcess.
// Events are delivered sequentially for a given process.
type ProcessListener interface {
	OnStarted()
	OnStdout(data []byte)
	OnStderr(data []byte)
	// OnFinished fires once the process exited. ExitCode and ExitStatus are valid afterwards.
	OnFinished()
	// OnError fires when the process failed. FailedToStart is not followed by OnFinished.
	OnError(err domain.ProcessError)
}

// DeviceProcess is a process running on a device.
type DeviceProcess interface {
	// SetListener installs the event receiver. It must be called before Start.
	SetListener(l ProcessListener)
	// Start launches the runnable asynchronously.
	Start(ctx context.Context, r domain.Runnable)
	// Interrupt sends an interrupt signal.
	Interrupt()
	// Terminate asks the process to exit.
	Terminate()
	// Kill forcefully ends the process.
	Kill()
	// ProcessID returns the id of the process, or 0 when unknown.
	ProcessID() int
	// ExitCode returns the exit code of the finished process.
	ExitCode() int
	// ExitStatus returns whether the finished process crashed.
	ExitStatus() domain.ExitStatus
	// ErrorString describes the last error.
	ErrorString() string
}

// SignalOperation interrupts or kills processes on a device.
type SignalOperation interface {
	InterruptProcess(ctx context.Context, pid int) error
	InterruptProcessByName(ctx context.Context, name string) error
	KillProcess(ctx context.Context, pid int) error
	KillProcessByName(ctx context.Context, name string) error
}

// PortsGatheringMethod lists the TCP ports in use on a device.
type PortsGatheringMethod interface {
	// Runnable returns the command that prints the used ports.
	Runnable() domain.Runnable
	// UsedPorts parses the output of the command.
	UsedPorts(output []byte) []domain.Port
}
