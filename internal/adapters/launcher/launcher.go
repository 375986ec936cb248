// Package launcher starts applications on the local machine or on a device
// and streams their decoded output to a listener.
package launcher

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/creack/pty"
	"github.com/orca-repos/orca-sub012/internal/adapters/windebug"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/tevino/abool/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Messages reported through ErrorString and the output channel.
const (
	MsgFailedToStart   = "Failed to start program. Path or permissions wrong?"
	MsgCrashed         = "The program has unexpectedly finished."
	MsgUnknownError    = "Some error has occurred while running the program."
	MsgNoDevice        = "Cannot run: No device."
	MsgCannotCreate    = "Cannot run: Device is not able to create processes."
	MsgNoCommand       = "Cannot run: No command given."
	MsgRemoteStartFail = "Application failed to start: "
	MsgStopRequested   = "User requested stop. Shutting down..."
	MsgNoDebugOutput   = "Cannot retrieve debugging output.\n"
)

type state int

const (
	stateIdle state = iota
	stateStarting
	stateRunning
	stateFinished
	stateErrored
)

var _ ports.Launcher = (*Launcher)(nil)

// Launcher implements ports.Launcher.
type Launcher struct {
	settings domain.RunSettings
	askPass  string
	encoding encoding.Encoding
	debug    *windebug.Multiplexer

	mu          sync.Mutex
	listener    ports.LauncherListener
	state       state
	cmd         *exec.Cmd
	pid         int
	errorString string
	remote      ports.DeviceProcess
	debugStop   chan struct{}

	stopRequested *abool.AtomicBool
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithAskPass sets the helper used by sudo to ask for a password.
func WithAskPass(path string) Option {
	return func(l *Launcher) { l.askPass = path }
}

// WithEncoding overrides the encoding of process output. By default it is
// derived from the locale of the process environment.
func WithEncoding(enc encoding.Encoding) Option {
	return func(l *Launcher) { l.encoding = enc }
}

// WithDebugOutput forwards the debug output of local processes from m.
func WithDebugOutput(m *windebug.Multiplexer) Option {
	return func(l *Launcher) { l.debug = m }
}

// New creates an idle launcher.
func New(settings domain.RunSettings, opts ...Option) *Launcher {
	l := &Launcher{
		settings:      settings,
		listener:      nopListener{},
		stopRequested: abool.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetListener installs the event receiver.
func (l *Launcher) SetListener(listener ports.LauncherListener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if listener == nil {
		listener = nopListener{}
	}
	l.listener = listener
}

// Start launches r. A desktop device runs it locally, any other device
// delegates to a device process.
func (l *Launcher) Start(ctx context.Context, r domain.Runnable, device ports.Device) {
	l.mu.Lock()
	if l.state == stateStarting || l.state == stateRunning {
		l.mu.Unlock()
		return
	}
	l.state = stateStarting
	l.errorString = ""
	l.pid = 0
	l.cmd = nil
	l.remote = nil
	l.stopRequested.UnSet()
	l.mu.Unlock()

	switch {
	case device == nil:
		l.failWithMessage(MsgNoDevice)
	case device.Type() == domain.DesktopDevice:
		l.startLocal(ctx, r)
	default:
		l.startRemote(ctx, r, device)
	}
}

func (l *Launcher) startLocal(ctx context.Context, r domain.Runnable) {
	if r.Executable == "" {
		l.fail(MsgFailedToStart)
		return
	}

	env := resolveEnvironment(os.Environ(), l.settings.Environment, r.Environment)
	executable, args := r.Executable, r.Arguments
	if lp, err := lookPath(executable, env); err == nil {
		executable = lp
	}
	if r.RunAsRoot {
		if _, ok := env["SUDO_ASKPASS"]; !ok && l.askPass != "" {
			env["SUDO_ASKPASS"] = l.askPass
		}
		args = append([]string{"-A", "-E", executable}, args...)
		executable = "sudo"
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user provided command
	cmd.Dir = r.WorkingDir
	cmd.Env = envList(env)
	if r.Input != nil {
		cmd.Stdin = bytes.NewReader(r.Input)
	}

	enc := l.encoding
	if enc == nil {
		enc = LocaleEncoding(env)
	}

	var channels []*channel
	var ioDone chan struct{}
	if l.settings.UseTerminal {
		out := l.newChannel(enc, domain.StdOutFormat)
		out.terminal = true
		channels = append(channels, out)

		ptmx, err := pty.Start(cmd)
		if err != nil {
			l.fail(MsgFailedToStart)
			return
		}
		ioDone = make(chan struct{})
		go func() {
			defer close(ioDone)
			defer func() { _ = ptmx.Close() }()
			// The pty merges stdout and stderr.
			_, _ = io.Copy(out, ptmx)
		}()
	} else {
		stdout := l.newChannel(enc, domain.StdOutFormat)
		channels = append(channels, stdout)
		cmd.Stdout = stdout
		cmd.Stderr = stdout
		if !l.settings.MergeStderrAndStdout {
			stderr := l.newChannel(enc, domain.StdErrFormat)
			channels = append(channels, stderr)
			cmd.Stderr = stderr
		}
		if err := cmd.Start(); err != nil {
			l.fail(MsgFailedToStart)
			return
		}
	}

	l.mu.Lock()
	l.cmd = cmd
	l.pid = cmd.Process.Pid
	l.state = stateRunning
	listener := l.listener
	// A Stop that ran while the process was starting found no cmd to kill.
	if l.stopRequested.IsSet() {
		_ = cmd.Process.Kill()
	}
	l.mu.Unlock()

	listener.OnProcessStarted()
	l.attachDebugOutput(cmd.Process.Pid)

	go l.wait(cmd, ioDone, channels)
}

func (l *Launcher) wait(cmd *exec.Cmd, ioDone <-chan struct{}, channels []*channel) {
	err := cmd.Wait()
	if ioDone != nil {
		<-ioDone
	}
	for _, c := range channels {
		c.flush()
	}
	l.detachDebugOutput()

	listener, ok := l.finish(stateFinished)
	if !ok {
		// Stop already reported the exit.
		return
	}

	exitCode, status := 0, domain.NormalExit
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
			if exitCode < 0 {
				status = domain.CrashExit
				l.setError(MsgCrashed)
				listener.OnError(domain.Crashed)
			}
		} else {
			exitCode, status = -1, domain.CrashExit
			l.setError(MsgUnknownError)
			listener.OnError(domain.UnknownError)
		}
	}
	listener.OnProcessExited(exitCode, status)
}

func (l *Launcher) startRemote(ctx context.Context, r domain.Runnable, device ports.Device) {
	if !device.CanCreateProcess() {
		l.failWithMessage(MsgCannotCreate)
		return
	}
	if r.Executable == "" {
		l.failWithMessage(MsgNoCommand)
		return
	}

	proc := device.CreateProcess()
	enc := l.encoding
	if enc == nil {
		enc = unicode.UTF8
	}
	stdout := l.newChannel(enc, domain.StdOutFormat)
	stderr := stdout
	if !l.settings.MergeStderrAndStdout {
		stderr = l.newChannel(enc, domain.StdErrFormat)
	}

	l.mu.Lock()
	l.remote = proc
	l.mu.Unlock()

	proc.SetListener(&remoteListener{l: l, proc: proc, stdout: stdout, stderr: stderr})
	proc.Start(ctx, r.WithEnvironment(l.settings.Environment))
}

// Stop ends the application. A local process is killed and its exit is
// reported as a crash before Stop returns.
func (l *Launcher) Stop() {
	l.mu.Lock()
	if l.state != stateStarting && l.state != stateRunning {
		l.mu.Unlock()
		return
	}
	remote, cmd := l.remote, l.cmd
	if remote == nil {
		l.stopRequested.Set()
	}
	l.mu.Unlock()

	if remote != nil {
		l.emit(MsgStopRequested+"\n", domain.NormalMessageFormat)
		remote.Terminate()
		return
	}

	if cmd == nil || cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
	if listener, ok := l.finish(stateFinished); ok {
		listener.OnProcessExited(-1, domain.CrashExit)
	}
}

// IsRunning reports whether the application is running.
func (l *Launcher) IsRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state == stateRunning
}

// ApplicationPID returns the process id, or 0.
func (l *Launcher) ApplicationPID() int {
	l.mu.Lock()
	remote, pid := l.remote, l.pid
	l.mu.Unlock()
	if remote != nil {
		return remote.ProcessID()
	}
	return pid
}

// ErrorString describes the last error.
func (l *Launcher) ErrorString() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errorString
}

func (l *Launcher) attachDebugOutput(pid int) {
	if l.debug == nil {
		return
	}
	if l.debug.Err() != nil {
		l.emit(MsgNoDebugOutput, domain.ErrorMessageFormat)
		return
	}

	ch, cancel := l.debug.Subscribe(pid)
	stop := make(chan struct{})
	l.mu.Lock()
	l.debugStop = stop
	l.mu.Unlock()

	go func() {
		defer cancel()
		for {
			select {
			case text := <-ch:
				if !strings.HasSuffix(text, "\n") {
					text += "\n"
				}
				l.emit(text, domain.DebugFormat)
			case <-stop:
				return
			}
		}
	}()
}

func (l *Launcher) detachDebugOutput() {
	l.mu.Lock()
	stop := l.debugStop
	l.debugStop = nil
	l.mu.Unlock()
	if stop != nil {
		close(stop)
	}
}

// finish moves an active launcher into next. It returns false when the
// launcher was no longer active, i.e. the end was already reported.
func (l *Launcher) finish(next state) (ports.LauncherListener, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != stateStarting && l.state != stateRunning {
		return nil, false
	}
	l.state = next
	return l.listener, true
}

func (l *Launcher) fail(msg string) {
	l.setError(msg)
	if listener, ok := l.finish(stateErrored); ok {
		listener.OnError(domain.FailedToStart)
	}
}

func (l *Launcher) failWithMessage(msg string) {
	l.emit(msg+"\n", domain.ErrorMessageFormat)
	l.fail(msg)
}

func (l *Launcher) setError(msg string) {
	l.mu.Lock()
	l.errorString = msg
	l.mu.Unlock()
}

func (l *Launcher) emit(text string, format domain.OutputFormat) {
	if text == "" {
		return
	}
	l.mu.Lock()
	listener := l.listener
	l.mu.Unlock()
	listener.OnAppendMessage(text, format)
}

// channel decodes one output stream of the process.
type channel struct {
	l        *Launcher
	format   domain.OutputFormat
	terminal bool

	mu  sync.Mutex
	dec *Decoder
}

func (l *Launcher) newChannel(enc encoding.Encoding, format domain.OutputFormat) *channel {
	return &channel{l: l, format: format, dec: NewDecoder(enc)}
}

func (c *channel) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forward(c.dec.Decode(p))
	return len(p), nil
}

func (c *channel) flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forward(c.dec.Flush())
}

func (c *channel) forward(text string) {
	if c.terminal {
		// PTYs translate \n into \r\n.
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	c.l.emit(text, c.format)
}

type remoteListener struct {
	l      *Launcher
	proc   ports.DeviceProcess
	stdout *channel
	stderr *channel
}

func (r *remoteListener) OnStarted() {
	r.l.mu.Lock()
	if r.l.state != stateStarting {
		r.l.mu.Unlock()
		return
	}
	r.l.state = stateRunning
	listener := r.l.listener
	r.l.mu.Unlock()
	listener.OnProcessStarted()
}

func (r *remoteListener) OnStdout(data []byte) { _, _ = r.stdout.Write(data) }

func (r *remoteListener) OnStderr(data []byte) { _, _ = r.stderr.Write(data) }

func (r *remoteListener) OnFinished() {
	r.stdout.flush()
	if r.stderr != r.stdout {
		r.stderr.flush()
	}
	if listener, ok := r.l.finish(stateFinished); ok {
		listener.OnProcessExited(r.proc.ExitCode(), r.proc.ExitStatus())
	}
}

func (r *remoteListener) OnError(err domain.ProcessError) {
	if err == domain.FailedToStart {
		r.l.failWithMessage(MsgRemoteStartFail + r.proc.ErrorString())
		return
	}
	r.l.setError(r.proc.ErrorString())

	r.l.mu.Lock()
	listener := r.l.listener
	r.l.mu.Unlock()
	listener.OnError(err)
}

type nopListener struct{}

func (nopListener) OnProcessStarted() {}

func (nopListener) OnAppendMessage(string, domain.OutputFormat) {}

func (nopListener) OnProcessExited(int, domain.ExitStatus) {}

func (nopListener) OnError(domain.ProcessError) {}
