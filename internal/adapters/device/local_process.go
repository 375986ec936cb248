package device

import (
	"context"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

var _ ports.DeviceProcess = (*LocalProcess)(nil)

// LocalProcess adapts a launcher to the device process interface.
type LocalProcess struct {
	launcher ports.Launcher
	device   ports.Device
	signals  ports.SignalOperation

	mu         sync.Mutex
	listener   ports.ProcessListener
	exitCode   int
	exitStatus domain.ExitStatus
}

// NewLocalProcess creates a process running through l on device.
func NewLocalProcess(l ports.Launcher, device ports.Device, signals ports.SignalOperation) *LocalProcess {
	p := &LocalProcess{launcher: l, device: device, signals: signals}
	l.SetListener(&localBridge{p: p})
	return p
}

// SetListener installs the event receiver.
func (p *LocalProcess) SetListener(l ports.ProcessListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listener = l
}

// Start launches r.
func (p *LocalProcess) Start(ctx context.Context, r domain.Runnable) {
	p.launcher.Start(ctx, r, p.device)
}

// Interrupt sends an interrupt signal to the process.
func (p *LocalProcess) Interrupt() {
	if pid := p.launcher.ApplicationPID(); pid != 0 {
		_ = p.signals.InterruptProcess(context.Background(), pid)
	}
}

// Terminate stops the process.
func (p *LocalProcess) Terminate() { p.launcher.Stop() }

// Kill stops the process.
func (p *LocalProcess) Kill() { p.launcher.Stop() }

// ProcessID returns the pid of the running process.
func (p *LocalProcess) ProcessID() int { return p.launcher.ApplicationPID() }

// ExitCode returns the exit code of the finished process.
func (p *LocalProcess) ExitCode() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exitCode
}

// ExitStatus returns whether the finished process crashed.
func (p *LocalProcess) ExitStatus() domain.ExitStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exitStatus
}

// ErrorString describes the last error.
func (p *LocalProcess) ErrorString() string { return p.launcher.ErrorString() }

func (p *LocalProcess) current() ports.ProcessListener {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listener
}

type localBridge struct {
	p *LocalProcess
}

func (b *localBridge) OnProcessStarted() {
	if l := b.p.current(); l != nil {
		l.OnStarted()
	}
}

func (b *localBridge) OnAppendMessage(text string, format domain.OutputFormat) {
	l := b.p.current()
	if l == nil {
		return
	}
	switch format {
	case domain.StdOutFormat:
		l.OnStdout([]byte(text))
	case domain.StdErrFormat, domain.ErrorMessageFormat:
		l.OnStderr([]byte(text))
	}
}

func (b *localBridge) OnProcessExited(exitCode int, status domain.ExitStatus) {
	b.p.mu.Lock()
	b.p.exitCode = exitCode
	b.p.exitStatus = status
	l := b.p.listener
	b.p.mu.Unlock()
	if l != nil {
		l.OnFinished()
	}
}

func (b *localBridge) OnError(err domain.ProcessError) {
	if l := b.p.current(); l != nil {
		l.OnError(err)
	}
}
