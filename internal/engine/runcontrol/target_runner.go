package runcontrol

import (
	"fmt"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// TargetRunner is the worker that runs the application itself.
type TargetRunner struct {
	launchers ports.LauncherFactory
	prepare   func(domain.Runnable) domain.Runnable

	mu           sync.Mutex
	launcher     ports.Launcher
	stopForced   bool
	stopReported bool
}

// TargetRunnerOption configures a TargetRunner.
type TargetRunnerOption func(*TargetRunner)

// WithPrepare lets fn adjust the runnable right before it is launched, when
// the start dependencies of the runner have already started.
func WithPrepare(fn func(domain.Runnable) domain.Runnable) TargetRunnerOption {
	return func(r *TargetRunner) { r.prepare = fn }
}

// NewTargetRunner creates a runner whose launchers come from launchers.
func NewTargetRunner(launchers ports.LauncherFactory, opts ...TargetRunnerOption) *TargetRunner {
	r := &TargetRunner{launchers: launchers}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddTargetRunner adds an essential worker running the application of rc.
func (rc *RunControl) AddTargetRunner(launchers ports.LauncherFactory, opts ...TargetRunnerOption) *Worker {
	w := rc.AddWorker("SimpleTargetRunner", NewTargetRunner(launchers, opts...))
	w.SetEssential(true)
	return w
}

// Start launches the application.
func (r *TargetRunner) Start(w *Worker) {
	runnable := w.Runnable()
	if r.prepare != nil {
		runnable = r.prepare(runnable)
	}
	device := w.Device()

	l := r.launchers.NewLauncher()
	r.mu.Lock()
	r.launcher = l
	r.stopForced = false
	r.stopReported = false
	r.mu.Unlock()
	l.SetListener(&runnerListener{runner: r, worker: w, launcher: l, runnable: runnable})

	w.AppendMessage(fmt.Sprintf("Starting %s...", runnable.CommandLine()), domain.NormalMessageFormat)
	isDesktop := device == nil || device.Type() == domain.DesktopDevice
	if isDesktop && runnable.Executable == "" {
		w.ReportFailure("No executable specified.")
		return
	}
	l.Start(w.rc.runContext(), runnable, device)
}

// Stop terminates the application.
func (r *TargetRunner) Stop(w *Worker) {
	r.mu.Lock()
	r.stopForced = true
	l := r.launcher
	r.mu.Unlock()
	if l == nil {
		r.reportStopped(w, nil, "")
		return
	}
	l.Stop()
}

// reportStopped reports w stopped once per start of launcher l. Events of
// launchers from earlier starts are dropped.
func (r *TargetRunner) reportStopped(w *Worker, l ports.Launcher, msg string) {
	r.mu.Lock()
	if r.stopReported || r.launcher != l {
		r.mu.Unlock()
		return
	}
	r.stopReported = true
	r.mu.Unlock()
	if msg != "" {
		w.AppendMessage(msg, domain.NormalMessageFormat)
	}
	w.ReportStopped()
}

// reportFailed is reportStopped for an application that never ran.
func (r *TargetRunner) reportFailed(w *Worker, l ports.Launcher, msg string) {
	r.mu.Lock()
	if r.stopReported || r.launcher != l {
		r.mu.Unlock()
		return
	}
	r.stopReported = true
	r.mu.Unlock()
	w.ReportFailure(msg)
}

func (r *TargetRunner) forced() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopForced
}

type runnerListener struct {
	runner   *TargetRunner
	worker   *Worker
	launcher ports.Launcher
	runnable domain.Runnable
}

func (l *runnerListener) OnProcessStarted() {
	if l.worker.Device() == nil || l.worker.Device().Type() == domain.DesktopDevice {
		l.worker.rc.setApplicationPID(l.launcher.ApplicationPID())
	}
	l.worker.ReportStarted()
}

func (l *runnerListener) OnAppendMessage(text string, format domain.OutputFormat) {
	l.worker.rc.appendMessage(text, format, false)
}

func (l *runnerListener) OnProcessExited(exitCode int, status domain.ExitStatus) {
	msg := fmt.Sprintf("%s exited with code %d", l.runnable.Executable, exitCode)
	if status == domain.CrashExit {
		msg = fmt.Sprintf("%s crashed.", l.runnable.Executable)
	}
	l.runner.reportStopped(l.worker, l.launcher, msg)
}

func (l *runnerListener) OnError(err domain.ProcessError) {
	if err == domain.Timedout {
		return
	}
	msg := UserMessageForProcessError(err, l.runnable.Executable)
	switch {
	case l.runner.forced():
		msg = "The process was ended forcefully."
	case err == domain.FailedToStart:
		l.runner.reportFailed(l.worker, l.launcher, msg)
		return
	}
	l.runner.reportStopped(l.worker, l.launcher, msg)
}

// UserMessageForProcessError explains err for the application output.
// Timeouts leave the process unchanged and yield an empty message.
func UserMessageForProcessError(err domain.ProcessError, program string) string {
	switch err {
	case domain.FailedToStart:
		return "The process failed to start. Either the invoked program \"" + program +
			"\" is missing, or you may have insufficient permissions to invoke the program."
	case domain.Crashed:
		return "The process crashed."
	case domain.Timedout:
		return ""
	case domain.WriteError:
		return "An error occurred when attempting to write to the process. For example, " +
			"the process may not be running, or it may have closed its input channel."
	case domain.ReadError:
		return "An error occurred when attempting to read from the process. For example, " +
			"the process may not be running."
	default:
		return "An unknown error in the process occurred."
	}
}
