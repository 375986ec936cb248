package runcontrol

import (
	"bytes"
	"fmt"
	"net/url"
	"slices"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// PortsGatherer asks the device which ports are in use and hands out the
// free ones. It counts as started once the list is known.
type PortsGatherer struct {
	mu        sync.Mutex
	device    ports.Device
	method    ports.PortsGatheringMethod
	process   ports.DeviceProcess
	gen       int
	stdout    bytes.Buffer
	stderr    bytes.Buffer
	used      []domain.Port
	freePorts domain.PortList
}

// AddPortsGatherer adds a gatherer for the device of rc.
func (rc *RunControl) AddPortsGatherer() (*Worker, *PortsGatherer) {
	g := &PortsGatherer{}
	return rc.AddWorker("PortGatherer", g), g
}

// Start runs the ports gathering command of the device.
func (g *PortsGatherer) Start(w *Worker) {
	w.AppendMessage("Checking available ports...", domain.NormalMessageFormat)
	device := w.Device()
	if device == nil {
		w.ReportFailure("No device given")
		return
	}
	method := device.PortsGatheringMethod()
	if method == nil {
		w.ReportFailure("Not implemented")
		return
	}

	process := device.CreateProcess()
	g.mu.Lock()
	g.gen++
	g.device, g.method, g.process = device, method, process
	g.stdout.Reset()
	g.stderr.Reset()
	g.used = nil
	gen := g.gen
	g.mu.Unlock()

	process.SetListener(&gathererListener{g: g, w: w, gen: gen})
	process.Start(w.rc.runContext(), method.Runnable())
}

// Stop drops the gathering process.
func (g *PortsGatherer) Stop(w *Worker) {
	g.detach()
	w.ReportStopped()
}

func (g *PortsGatherer) detach() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	g.process = nil
	g.stdout.Reset()
	g.stderr.Reset()
}

// FindEndPoint returns a tcp URL on the device host with the next free port.
// The port is 0 when none is left.
func (g *PortsGatherer) FindEndPoint() *url.URL {
	g.mu.Lock()
	defer g.mu.Unlock()
	var host string
	if g.device != nil {
		host = g.device.SSHParameters().Host
	}
	return domain.EndPoint(host, g.nextFreePortLocked())
}

// UsedPorts returns the ports found in use.
func (g *PortsGatherer) UsedPorts() []domain.Port {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.used)
}

func (g *PortsGatherer) nextFreePortLocked() domain.Port {
	for g.freePorts.HasMore() {
		p := g.freePorts.GetNext()
		if !slices.Contains(g.used, p) {
			return p
		}
	}
	return 0
}

type gathererListener struct {
	g   *PortsGatherer
	w   *Worker
	gen int
}

func (l *gathererListener) current() bool {
	return l.g.gen == l.gen
}

func (l *gathererListener) OnStarted() {}

func (l *gathererListener) OnStdout(data []byte) {
	l.g.mu.Lock()
	defer l.g.mu.Unlock()
	if l.current() {
		l.g.stdout.Write(data)
	}
}

func (l *gathererListener) OnStderr(data []byte) {
	l.g.mu.Lock()
	defer l.g.mu.Unlock()
	if l.current() {
		l.g.stderr.Write(data)
	}
}

func (l *gathererListener) OnError(domain.ProcessError) {
	g := l.g
	g.mu.Lock()
	if !l.current() {
		g.mu.Unlock()
		return
	}
	msg := "Connection error: " + g.process.ErrorString()
	g.mu.Unlock()

	g.detach()
	l.w.ReportFailure(msg)
}

func (l *gathererListener) OnFinished() {
	g := l.g
	g.mu.Lock()
	if !l.current() {
		g.mu.Unlock()
		return
	}
	var msg string
	switch {
	case g.process.ExitStatus() == domain.CrashExit:
		msg = "Remote process crashed: " + g.process.ErrorString()
	case g.process.ExitCode() != 0:
		msg = fmt.Sprintf("Remote process failed; exit code was %d.", g.process.ExitCode())
	}
	if msg != "" && g.stderr.Len() > 0 {
		msg += "\nRemote error output was: " + g.stderr.String()
	}
	if msg == "" {
		g.setupUsedPortsLocked()
	}
	count := g.freePorts.Count()
	g.mu.Unlock()

	g.detach()
	if msg != "" {
		l.w.ReportFailure(msg)
		return
	}
	l.w.AppendMessage(fmt.Sprintf("Found %d free ports.", count), domain.NormalMessageFormat)
	l.w.ReportStarted()
}

// setupUsedPortsLocked keeps the used ports that matter: those the device
// could otherwise hand out.
func (g *PortsGatherer) setupUsedPortsLocked() {
	free := g.device.FreePorts()
	g.used = nil
	for _, p := range g.method.UsedPorts(g.stdout.Bytes()) {
		if free.Contains(p) && !slices.Contains(g.used, p) {
			g.used = append(g.used, p)
		}
	}
	g.freePorts = free
}
