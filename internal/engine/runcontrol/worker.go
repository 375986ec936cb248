package runcontrol

import (
	"slices"
	"sync"
	"time"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
)

// Impl is the behavior of a worker. Start and Stop are called on the event
// loop and must not block; the implementation answers through the Report
// methods of the worker, possibly from another goroutine.
type Impl interface {
	Start(w *Worker)
	Stop(w *Worker)
}

// Worker is one node of the run graph.
type Worker struct {
	rc   *RunControl
	id   string
	impl Impl

	// Guarded by rc.mu.
	state          domain.WorkerState
	startDeps      []*Worker
	stopDeps       []*Worker
	essential      bool
	reRunning      bool
	startTimeout   time.Duration
	stopTimeout    time.Duration
	onStartTimeout func()
	onStopTimeout  func()
	startTimer     *time.Timer
	stopTimer      *time.Timer
	span           ports.Span

	dataMu sync.Mutex
	data   map[string]any
}

// AddWorker creates a worker of rc driven by impl. Workers must be added
// before the control starts.
func (rc *RunControl) AddWorker(id string, impl Impl) *Worker {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	w := &Worker{
		rc:           rc,
		id:           id,
		impl:         impl,
		startTimeout: rc.watchdogs.StartTimeout,
		stopTimeout:  rc.watchdogs.StopTimeout,
		data:         make(map[string]any),
	}
	rc.workers = append(rc.workers, w)
	return w
}

// ID returns the worker id.
func (w *Worker) ID() string { return w.id }

// RunControl returns the owning control.
func (w *Worker) RunControl() *RunControl { return w.rc }

// Device returns the device of the owning control.
func (w *Worker) Device() ports.Device { return w.rc.device }

// Runnable returns the application of the owning control.
func (w *Worker) Runnable() domain.Runnable { return w.rc.runnable }

// State returns the worker state.
func (w *Worker) State() domain.WorkerState {
	w.rc.mu.Lock()
	defer w.rc.mu.Unlock()
	return w.state
}

// AddStartDependency makes w start only after dep is running or done.
func (w *Worker) AddStartDependency(dep *Worker) error {
	w.rc.mu.Lock()
	defer w.rc.mu.Unlock()
	if err := checkEdge(w, dep, func(x *Worker) []*Worker { return x.startDeps }); err != nil {
		return err
	}
	w.startDeps = append(w.startDeps, dep)
	return nil
}

// AddStopDependency makes w stop only after dep is done.
func (w *Worker) AddStopDependency(dep *Worker) error {
	w.rc.mu.Lock()
	defer w.rc.mu.Unlock()
	if err := checkEdge(w, dep, func(x *Worker) []*Worker { return x.stopDeps }); err != nil {
		return err
	}
	w.stopDeps = append(w.stopDeps, dep)
	return nil
}

// checkEdge rejects an edge from w to dep that would close a cycle.
func checkEdge(w, dep *Worker, edges func(*Worker) []*Worker) error {
	if dep.rc != w.rc {
		return zerr.With(domain.ErrMissingDependency, "worker", dep.id)
	}
	seen := make(map[*Worker]bool)
	var reaches func(from *Worker) bool
	reaches = func(from *Worker) bool {
		if from == w {
			return true
		}
		if seen[from] {
			return false
		}
		seen[from] = true
		return slices.ContainsFunc(edges(from), reaches)
	}
	if reaches(dep) {
		return zerr.With(zerr.With(domain.ErrCycleDetected, "worker", w.id), "dependency", dep.id)
	}
	return nil
}

func (w *Worker) hasStopDependency(dep *Worker) bool {
	return slices.Contains(w.stopDeps, dep)
}

func (w *Worker) canStart() bool {
	if w.state != domain.WorkerInitialized {
		return false
	}
	for _, dep := range w.startDeps {
		if dep.state != domain.WorkerDone && dep.state != domain.WorkerRunning {
			return false
		}
	}
	return true
}

func (w *Worker) canStop() bool {
	if w.state != domain.WorkerStarting && w.state != domain.WorkerRunning {
		return false
	}
	for _, dep := range w.stopDeps {
		if dep.state != domain.WorkerDone {
			return false
		}
	}
	return true
}

// SetEssential makes the whole run stop when w stops.
func (w *Worker) SetEssential(essential bool) {
	w.rc.mu.Lock()
	defer w.rc.mu.Unlock()
	w.essential = essential
}

// IsEssential reports whether the run stops together with w.
func (w *Worker) IsEssential() bool {
	w.rc.mu.Lock()
	defer w.rc.mu.Unlock()
	return w.essential
}

// SetSupportsReRunning marks w as restartable.
func (w *Worker) SetSupportsReRunning(ok bool) {
	w.rc.mu.Lock()
	defer w.rc.mu.Unlock()
	w.reRunning = ok
}

// SetStartTimeout overrides the start watchdog. When it fires, callback is
// called instead of failing the worker, unless callback is nil.
// A zero duration disables the watchdog.
func (w *Worker) SetStartTimeout(d time.Duration, callback func()) {
	w.rc.mu.Lock()
	defer w.rc.mu.Unlock()
	w.startTimeout, w.onStartTimeout = d, callback
}

// SetStopTimeout is the stop counterpart of SetStartTimeout.
func (w *Worker) SetStopTimeout(d time.Duration, callback func()) {
	w.rc.mu.Lock()
	defer w.rc.mu.Unlock()
	w.stopTimeout, w.onStopTimeout = d, callback
}

// RecordData stores a value other workers may read once w started.
func (w *Worker) RecordData(channel string, value any) {
	w.dataMu.Lock()
	defer w.dataMu.Unlock()
	w.data[channel] = value
}

// RecordedData returns a value stored with RecordData.
func (w *Worker) RecordedData(channel string) (any, bool) {
	w.dataMu.Lock()
	defer w.dataMu.Unlock()
	v, ok := w.data[channel]
	return v, ok
}

// ReportStarted tells the control that w is up.
func (w *Worker) ReportStarted() {
	w.rc.post(func() { w.rc.onWorkerStarted(w) })
}

// ReportStopped tells the control that w is down, spontaneously or on request.
func (w *Worker) ReportStopped() {
	w.rc.post(func() { w.rc.onWorkerStopped(w) })
}

// ReportDone finishes a short-lived worker. A starting worker counts as
// started first, so its dependents may proceed.
func (w *Worker) ReportDone() {
	w.rc.post(func() {
		switch w.state {
		case domain.WorkerInitialized:
			w.rc.setWorkerDone(w)
		case domain.WorkerStarting:
			w.rc.onWorkerStarted(w)
			w.rc.onWorkerStopped(w)
		case domain.WorkerRunning, domain.WorkerStopping:
			w.rc.onWorkerStopped(w)
		}
	})
}

// ReportFailure shows msg and tears the run down.
func (w *Worker) ReportFailure(msg string) {
	w.rc.post(func() { w.rc.onWorkerFailed(w, msg) })
}

// AppendMessage writes msg to the output of the control, adding a line break.
func (w *Worker) AppendMessage(msg string, format domain.OutputFormat) {
	w.rc.appendMessage(msg, format, true)
}

func (w *Worker) armStartWatchdog() {
	if w.startTimeout <= 0 {
		return
	}
	var t *time.Timer
	t = time.AfterFunc(w.startTimeout, func() {
		w.rc.post(func() {
			if w.startTimer != t {
				return
			}
			w.startTimer = nil
			if cb := w.onStartTimeout; cb != nil {
				w.rc.later(cb)
				return
			}
			w.rc.onWorkerFailed(w, "Worker start timed out.")
		})
	})
	w.startTimer = t
}

func (w *Worker) armStopWatchdog() {
	if w.stopTimeout <= 0 {
		return
	}
	var t *time.Timer
	t = time.AfterFunc(w.stopTimeout, func() {
		w.rc.post(func() {
			if w.stopTimer != t {
				return
			}
			w.stopTimer = nil
			if cb := w.onStopTimeout; cb != nil {
				w.rc.later(cb)
				return
			}
			w.rc.onWorkerFailed(w, "Worker stop timed out.")
		})
	})
	w.stopTimer = t
}

func (w *Worker) killStartWatchdog() {
	if w.startTimer != nil {
		w.startTimer.Stop()
		w.startTimer = nil
	}
}

func (w *Worker) killStopWatchdog() {
	if w.stopTimer != nil {
		w.stopTimer.Stop()
		w.stopTimer = nil
	}
}

func (w *Worker) killWatchdogs() {
	w.killStartWatchdog()
	w.killStopWatchdog()
}
