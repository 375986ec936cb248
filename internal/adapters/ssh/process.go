package ssh

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// Messages reported through ErrorString.
const (
	MsgKillTimeout      = "Timeout waiting for remote process to finish."
	MsgKillFailed       = "Failed to kill remote process: "
	MsgTerminated       = "Terminated by request."
	MsgEndedForcefully  = "The process was ended forcefully."
	MsgConnectionClosed = "Connection closed."
)

const (
	crashExitCode        = 255
	defaultSignalTimeout = 10 * time.Second
)

type processState int

const (
	stateInactive processState = iota
	stateConnecting
	stateConnected
	stateProcessRunning
)

type signalKind int

const (
	signalInterrupt signalKind = iota
	signalTerminate
	signalKill
)

var _ ports.DeviceProcess = (*Process)(nil)

// Process runs a command on a remote device.
type Process struct {
	pool        *Pool
	params      domain.SSHParameters
	signals     ports.SignalOperation
	killTimeout time.Duration

	mu          sync.Mutex
	state       processState
	gen         int
	listener    ports.ProcessListener
	conn        *Connection
	session     Session
	runnable    domain.Runnable
	pid         int
	exitCode    int
	exitStatus  domain.ExitStatus
	errorString string
	killing     bool
	killTimer   *time.Timer
}

// NewProcess creates an inactive remote process.
func NewProcess(pool *Pool, params domain.SSHParameters, signals ports.SignalOperation, killTimeout time.Duration) *Process {
	return &Process{
		pool:        pool,
		params:      params,
		signals:     signals,
		killTimeout: killTimeout,
		listener:    nopProcessListener{},
	}
}

// SetListener installs the event receiver.
func (p *Process) SetListener(l ports.ProcessListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if l == nil {
		l = nopProcessListener{}
	}
	p.listener = l
}

// Start connects and runs r asynchronously.
func (p *Process) Start(ctx context.Context, r domain.Runnable) {
	p.mu.Lock()
	if p.state != stateInactive || r.Executable == "" {
		p.mu.Unlock()
		return
	}
	p.state = stateConnecting
	p.gen++
	gen := p.gen
	p.runnable = r
	p.pid = 0
	p.exitCode = 0
	p.exitStatus = domain.NormalExit
	p.errorString = ""
	p.mu.Unlock()

	go p.run(ctx, gen)
}

func (p *Process) run(ctx context.Context, gen int) {
	conn, err := p.pool.Acquire(ctx, p.params)
	if err != nil {
		p.handleDisconnected(gen, err.Error())
		return
	}

	p.mu.Lock()
	if p.gen != gen || p.state != stateConnecting {
		p.mu.Unlock()
		p.pool.Release(conn)
		return
	}
	p.conn = conn
	p.state = stateConnected
	r := p.runnable
	p.mu.Unlock()

	session, err := conn.NewSession()
	if err != nil {
		p.handleDisconnected(gen, err.Error())
		return
	}
	session.SetStdout(&pidSniffer{p: p, gen: gen})
	session.SetStderr(writerFunc(func(data []byte) { p.forward(gen, data, false) }))
	if r.Input != nil {
		session.SetStdin(bytes.NewReader(r.Input))
	}

	p.mu.Lock()
	if p.gen != gen || p.state != stateConnected {
		p.mu.Unlock()
		_ = session.Close()
		return
	}
	p.session = session
	p.mu.Unlock()

	if err := session.Start(FullCommandLine(r)); err != nil {
		p.handleDisconnected(gen, err.Error())
		return
	}

	p.mu.Lock()
	if p.gen != gen || p.state != stateConnected {
		p.mu.Unlock()
		return
	}
	p.state = stateProcessRunning
	listener := p.listener
	p.mu.Unlock()
	listener.OnStarted()

	waited := make(chan error, 1)
	go func() { waited <- session.Wait() }()

	select {
	case err := <-waited:
		p.handleFinished(gen, err)
	case <-conn.Done():
		p.handleDisconnected(gen, MsgConnectionClosed)
	}
}

func (p *Process) handleFinished(gen int, err error) {
	p.mu.Lock()
	if p.gen != gen || p.state == stateInactive {
		p.mu.Unlock()
		return
	}

	msg := ""
	var exitErr *ExitError
	switch {
	case err == nil:
		p.exitCode = 0
	case errors.As(err, &exitErr):
		p.exitCode = exitErr.Code
		if exitErr.Signal != "" {
			p.exitStatus = domain.CrashExit
			msg = exitErr.Error()
		}
	default:
		p.exitCode = crashExitCode
		p.exitStatus = domain.CrashExit
		msg = err.Error()
	}
	if p.killing && (msg == "" || p.exitStatus == domain.CrashExit) {
		msg = MsgEndedForcefully
	}
	p.errorString = msg

	listener := p.listener
	cleanup := p.setInactiveLocked()
	p.mu.Unlock()

	cleanup()
	listener.OnFinished()
}

// handleDisconnected reports a transport failure. Before the process runs it
// is a failure to start; afterwards the process is considered crashed.
func (p *Process) handleDisconnected(gen int, msg string) {
	p.mu.Lock()
	if p.gen != gen || p.state == stateInactive {
		p.mu.Unlock()
		return
	}
	old := p.state
	if msg != "" {
		p.errorString = msg
	}
	listener := p.listener
	cleanup := p.setInactiveLocked()
	if old == stateProcessRunning {
		p.exitStatus = domain.CrashExit
	}
	p.mu.Unlock()

	cleanup()
	if old == stateProcessRunning {
		listener.OnFinished()
		return
	}
	listener.OnError(domain.FailedToStart)
}

// setInactiveLocked resets the wiring of the process. The returned function
// releases the transport and must be called without holding the lock.
func (p *Process) setInactiveLocked() func() {
	p.state = stateInactive
	p.gen++
	p.killing = false
	if p.killTimer != nil {
		p.killTimer.Stop()
		p.killTimer = nil
	}
	session, conn := p.session, p.conn
	p.session, p.conn = nil, nil

	return func() {
		if session != nil {
			_ = session.Close()
		}
		if conn != nil {
			p.pool.Release(conn)
		}
	}
}

// Interrupt sends SIGINT to the remote process.
func (p *Process) Interrupt() { p.signal(signalInterrupt) }

// Terminate asks the remote process to exit.
func (p *Process) Terminate() { p.signal(signalTerminate) }

// Kill forcefully ends the remote process.
func (p *Process) Kill() { p.signal(signalKill) }

func (p *Process) signal(kind signalKind) {
	p.mu.Lock()
	if p.runnable.Executable == "" {
		p.mu.Unlock()
		return
	}

	switch p.state {
	case stateInactive:
		p.mu.Unlock()
	case stateConnecting:
		p.errorString = MsgTerminated
		listener := p.listener
		cleanup := p.setInactiveLocked()
		p.mu.Unlock()
		cleanup()
		listener.OnError(domain.FailedToStart)
	default:
		pid, name := p.pid, p.runnable.Executable
		if kind == signalInterrupt {
			p.mu.Unlock()
			go p.sendSignal(pid, name, kind)
			return
		}
		if p.killing {
			p.mu.Unlock()
			return
		}
		p.killing = true
		gen := p.gen
		p.killTimer = time.AfterFunc(p.killTimeout, func() { p.handleKillTimeout(gen) })
		p.mu.Unlock()

		go func() {
			err := p.sendSignal(pid, name, kind)
			p.handleKillFinished(gen, err)
		}()
	}
}

func (p *Process) sendSignal(pid int, name string, kind signalKind) error {
	timeout := p.killTimeout
	if timeout <= 0 {
		timeout = defaultSignalTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	switch {
	case kind == signalInterrupt && pid != 0:
		return p.signals.InterruptProcess(ctx, pid)
	case kind == signalInterrupt:
		return p.signals.InterruptProcessByName(ctx, name)
	case pid != 0:
		return p.signals.KillProcess(ctx, pid)
	default:
		return p.signals.KillProcessByName(ctx, name)
	}
}

func (p *Process) handleKillFinished(gen int, err error) {
	if err == nil {
		// The process will finish as expected.
		return
	}

	p.mu.Lock()
	if p.gen != gen || p.state != stateProcessRunning {
		p.mu.Unlock()
		return
	}
	p.exitStatus = domain.CrashExit
	p.errorString = MsgKillFailed + err.Error()
	listener := p.listener
	cleanup := p.setInactiveLocked()
	p.mu.Unlock()

	cleanup()
	listener.OnFinished()
}

func (p *Process) handleKillTimeout(gen int) {
	p.mu.Lock()
	if p.gen != gen || p.state == stateInactive {
		p.mu.Unlock()
		return
	}
	p.exitStatus = domain.CrashExit
	p.errorString = MsgKillTimeout
	listener := p.listener
	cleanup := p.setInactiveLocked()
	p.mu.Unlock()

	cleanup()
	listener.OnFinished()
}

func (p *Process) forward(gen int, data []byte, stdout bool) {
	p.mu.Lock()
	if p.gen != gen || p.state == stateInactive {
		p.mu.Unlock()
		return
	}
	listener := p.listener
	p.mu.Unlock()

	if stdout {
		listener.OnStdout(data)
	} else {
		listener.OnStderr(data)
	}
}

func (p *Process) setPID(gen, pid int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen == gen {
		p.pid = pid
	}
}

// ProcessID returns the remote pid once it has been reported.
func (p *Process) ProcessID() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pid
}

// ExitCode returns the exit code of the finished process.
func (p *Process) ExitCode() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exitCode
}

// ExitStatus returns CrashExit for crashes and for exit code 255, which is
// what the remote shell reports when the command was killed.
func (p *Process) ExitStatus() domain.ExitStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.exitStatus == domain.NormalExit && p.exitCode != crashExitCode {
		return domain.NormalExit
	}
	return domain.CrashExit
}

// ErrorString describes the last error.
func (p *Process) ErrorString() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errorString
}

// FullCommandLine renders r as a remote shell command. The shell prints its
// pid on the first line before exec'ing the command.
func FullCommandLine(r domain.Runnable) string {
	var b strings.Builder
	b.WriteString("echo $$ && ")
	if r.WorkingDir != "" {
		b.WriteString("cd " + ShellQuote(r.WorkingDir) + " && ")
	}
	b.WriteString("exec ")
	if r.RunAsRoot {
		b.WriteString("sudo -n -E ")
	}
	if len(r.Environment) > 0 {
		b.WriteString("env ")
		keys := make([]string, 0, len(r.Environment))
		for k := range r.Environment {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			b.WriteString(ShellQuote(k+"="+r.Environment[k]) + " ")
		}
	}
	b.WriteString(ShellQuote(r.Executable))
	for _, a := range r.Arguments {
		b.WriteString(" " + ShellQuote(a))
	}
	return b.String()
}

// ShellQuote quotes s for a POSIX shell.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`!*?[]{}()<>|&;#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// pidSniffer strips the pid line from the remote stdout.
type pidSniffer struct {
	p    *Process
	gen  int
	buf  []byte
	seen bool
}

func (s *pidSniffer) Write(data []byte) (int, error) {
	if s.seen {
		s.p.forward(s.gen, bytes.Clone(data), true)
		return len(data), nil
	}

	s.buf = append(s.buf, data...)
	i := bytes.IndexByte(s.buf, '\n')
	if i < 0 {
		return len(data), nil
	}
	s.seen = true
	if pid, err := strconv.Atoi(strings.TrimSpace(string(s.buf[:i]))); err == nil {
		s.p.setPID(s.gen, pid)
	}
	if rest := s.buf[i+1:]; len(rest) > 0 {
		s.p.forward(s.gen, bytes.Clone(rest), true)
	}
	s.buf = nil
	return len(data), nil
}

type writerFunc func([]byte)

func (f writerFunc) Write(data []byte) (int, error) {
	f(bytes.Clone(data))
	return len(data), nil
}

type nopProcessListener struct{}

func (nopProcessListener) OnStarted() {}

func (nopProcessListener) OnStdout([]byte) {}

func (nopProcessListener) OnStderr([]byte) {}

func (nopProcessListener) OnFinished() {}

func (nopProcessListener) OnError(domain.ProcessError) {}
