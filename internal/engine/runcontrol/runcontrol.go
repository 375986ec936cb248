// Package runcontrol starts and stops the workers of a run session in
// dependency order.
package runcontrol

import (
	"context"
	"fmt"
	"sync"

	"github.com/edwingeng/deque"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RunningApplication = (*RunControl)(nil)

// RunControl owns the workers of one run session. State transitions happen
// on the goroutine running Run; workers report back through posted events,
// so their implementations may call the Report methods from any goroutine.
type RunControl struct {
	displayName string
	project     *domain.Project
	runConfig   *domain.RunConfiguration
	device      ports.Device
	runnable    domain.Runnable
	output      ports.OutputSink
	tracer      ports.Tracer
	watchdogs   domain.WorkerSettings

	inboxMu sync.Mutex
	inbox   deque.Deque
	wake    chan struct{}
	done    chan struct{}

	mu        sync.Mutex
	ctx       context.Context
	state     domain.RunControlState
	changed   chan struct{}
	workers   []*Worker
	pending   []func()
	observers []func(domain.RunControlState)
	pid       int
	failed    bool
	span      ports.Span
	spanCtx   context.Context
}

// Option configures a RunControl.
type Option func(*RunControl)

// WithTracer records a span per session and per worker.
func WithTracer(t ports.Tracer) Option {
	return func(rc *RunControl) { rc.tracer = t }
}

// WithWatchdogs sets the default start and stop timeouts of new workers.
func WithWatchdogs(s domain.WorkerSettings) Option {
	return func(rc *RunControl) { rc.watchdogs = s }
}

// WithDisplayName overrides the name derived from the run configuration.
func WithDisplayName(name string) Option {
	return func(rc *RunControl) { rc.displayName = name }
}

// New creates a run control for runConfig on device. Messages of the workers
// go to output. Run must be active for the control to make progress.
func New(runConfig *domain.RunConfiguration, device ports.Device, output ports.OutputSink, opts ...Option) *RunControl {
	rc := &RunControl{
		runConfig: runConfig,
		device:    device,
		output:    output,
		inbox:     deque.NewDeque(),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
		ctx:       context.Background(),
		changed:   make(chan struct{}),
		spanCtx:   context.Background(),
	}
	if runConfig != nil {
		rc.displayName = runConfig.Name
		rc.runnable = runConfig.Runnable()
		if runConfig.Target != nil {
			rc.project = runConfig.Target.Project
		}
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// Run processes events until the control is finished or ctx is done.
func (rc *RunControl) Run(ctx context.Context) error {
	rc.mu.Lock()
	rc.ctx = ctx
	rc.mu.Unlock()
	defer close(rc.done)

	for {
		for fn := rc.next(); fn != nil; fn = rc.next() {
			rc.mu.Lock()
			fn()
			calls := rc.pending
			rc.pending = nil
			rc.mu.Unlock()

			for _, c := range calls {
				c()
			}
		}
		if rc.State() == domain.RunControlFinished {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-rc.wake:
		}
	}
}

// post queues fn for the event loop. It never blocks.
func (rc *RunControl) post(fn func()) {
	rc.inboxMu.Lock()
	rc.inbox.PushBack(fn)
	rc.inboxMu.Unlock()
	select {
	case rc.wake <- struct{}{}:
	default:
	}
}

func (rc *RunControl) next() func() {
	rc.inboxMu.Lock()
	defer rc.inboxMu.Unlock()
	if rc.inbox.Empty() {
		return nil
	}
	return rc.inbox.PopFront().(func())
}

// later runs fn on the loop once the current event released the lock.
func (rc *RunControl) later(fn func()) {
	rc.pending = append(rc.pending, fn)
}

// OnStateChanged registers fn. It is called on the event loop after every
// state change and must not block.
func (rc *RunControl) OnStateChanged(fn func(domain.RunControlState)) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.observers = append(rc.observers, fn)
}

// InitiateStart starts all workers in dependency order.
func (rc *RunControl) InitiateStart() { rc.post(rc.initiateStart) }

// InitiateReStart starts a stopped control again.
func (rc *RunControl) InitiateReStart() { rc.post(rc.initiateReStart) }

// InitiateStop stops all workers in reverse dependency order.
func (rc *RunControl) InitiateStop() { rc.post(rc.initiateStop) }

// InitiateFinish stops all workers and finishes the control for good.
func (rc *RunControl) InitiateFinish() { rc.post(rc.initiateFinish) }

// ForceStop marks every worker done without waiting for them.
func (rc *RunControl) ForceStop() { rc.post(rc.forceStop) }

func (rc *RunControl) initiateStart() {
	if rc.state != domain.RunControlInitialized {
		return
	}
	rc.failed = false
	rc.beginSession()
	if rc.setState(domain.RunControlStarting) {
		rc.continueStart()
	}
}

func (rc *RunControl) initiateReStart() {
	if rc.state != domain.RunControlStopped {
		return
	}
	for _, w := range rc.workers {
		if w.state == domain.WorkerDone {
			w.state = domain.WorkerInitialized
		}
	}
	rc.failed = false
	rc.beginSession()
	if rc.setState(domain.RunControlStarting) {
		rc.continueStart()
	}
}

// continueStart starts the first worker whose start dependencies are met.
// Workers are started one at a time; the next one follows its predecessor's
// start report.
func (rc *RunControl) continueStart() {
	if rc.state != domain.RunControlStarting {
		return
	}
	allDone := true
	for _, w := range rc.workers {
		switch w.state {
		case domain.WorkerInitialized:
			if w.canStart() {
				rc.startWorker(w)
				return
			}
			allDone = false
		case domain.WorkerStarting:
			allDone = false
		}
	}
	if allDone {
		rc.setState(domain.RunControlRunning)
	}
}

func (rc *RunControl) initiateStop() {
	if rc.state != domain.RunControlStarting && rc.state != domain.RunControlRunning {
		return
	}
	if rc.setState(domain.RunControlStopping) {
		rc.continueStopOrFinish()
	}
}

func (rc *RunControl) initiateFinish() {
	switch rc.state {
	case domain.RunControlFinishing, domain.RunControlFinished:
		return
	}
	if rc.setState(domain.RunControlFinishing) {
		rc.continueStopOrFinish()
	}
}

func (rc *RunControl) continueStopOrFinish() {
	allDone := true
	for _, w := range rc.workers {
		switch w.state {
		case domain.WorkerInitialized:
			rc.setWorkerDone(w)
		case domain.WorkerStarting, domain.WorkerRunning:
			if w.canStop() {
				rc.stopWorker(w)
			}
			allDone = false
		case domain.WorkerStopping:
			allDone = false
		}
	}
	if !allDone {
		return
	}
	switch rc.state {
	case domain.RunControlFinishing:
		rc.setState(domain.RunControlFinished)
	case domain.RunControlStopping:
		rc.setState(domain.RunControlStopped)
	}
}

func (rc *RunControl) forceStop() {
	for _, w := range rc.workers {
		rc.setWorkerDone(w)
	}
	switch rc.state {
	case domain.RunControlStarting:
		rc.setState(domain.RunControlStopping)
		rc.setState(domain.RunControlStopped)
	case domain.RunControlRunning, domain.RunControlStopping:
		rc.setState(domain.RunControlStopped)
	case domain.RunControlInitialized:
		rc.setState(domain.RunControlFinishing)
		rc.setState(domain.RunControlFinished)
	case domain.RunControlFinishing:
		rc.setState(domain.RunControlFinished)
	}
}

func (rc *RunControl) startWorker(w *Worker) {
	w.state = domain.WorkerStarting
	w.armStartWatchdog()
	ctx := rc.spanCtx
	if rc.tracer != nil {
		_, w.span = rc.tracer.Start(ctx, "worker "+w.id, ports.WithAttribute("worker", w.id))
	}
	rc.later(func() { w.impl.Start(w) })
}

func (rc *RunControl) stopWorker(w *Worker) {
	w.state = domain.WorkerStopping
	w.armStopWatchdog()
	rc.later(func() { w.impl.Stop(w) })
}

func (rc *RunControl) setWorkerDone(w *Worker) {
	w.killWatchdogs()
	w.state = domain.WorkerDone
	if span := w.span; span != nil {
		w.span = nil
		rc.later(span.End)
	}
}

func (rc *RunControl) onWorkerStarted(w *Worker) {
	w.killStartWatchdog()
	switch w.state {
	case domain.WorkerStopping, domain.WorkerDone:
		return
	}
	w.state = domain.WorkerRunning
	if rc.state == domain.RunControlStarting {
		rc.continueStart()
		return
	}
	rc.showError(fmt.Sprintf("Unexpected run control state %s when worker %s started.", rc.state, w.id))
}

func (rc *RunControl) onWorkerFailed(w *Worker, msg string) {
	w.killWatchdogs()
	if span := w.span; span != nil {
		span.RecordError(zerr.With(zerr.With(domain.ErrWorkerFailed, "worker", w.id), "message", msg))
	}
	rc.failed = true
	rc.setWorkerDone(w)
	rc.showError(msg)

	switch rc.state {
	case domain.RunControlStarting, domain.RunControlRunning:
		rc.initiateStop()
	default:
		rc.continueStopOrFinish()
	}
}

func (rc *RunControl) onWorkerStopped(w *Worker) {
	w.killStopWatchdog()
	if w.state == domain.WorkerDone {
		return
	}
	rc.setWorkerDone(w)

	switch {
	case rc.state == domain.RunControlFinishing || rc.state == domain.RunControlStopping:
		rc.continueStopOrFinish()
		return
	case w.essential:
		rc.initiateStop()
		return
	}

	// Workers waiting for w before they may stop follow it down.
	for _, dependent := range rc.workers {
		if !dependent.hasStopDependency(w) {
			continue
		}
		switch dependent.state {
		case domain.WorkerDone:
		case domain.WorkerInitialized:
			rc.setWorkerDone(dependent)
		default:
			rc.stopWorker(dependent)
		}
	}

	for _, other := range rc.workers {
		switch other.state {
		case domain.WorkerStarting, domain.WorkerRunning, domain.WorkerStopping:
			return
		}
	}
	switch rc.state {
	case domain.RunControlStarting:
		rc.setState(domain.RunControlStopping)
		rc.setState(domain.RunControlStopped)
	case domain.RunControlRunning:
		rc.setState(domain.RunControlStopped)
	}
}

func (rc *RunControl) showError(msg string) {
	if msg == "" {
		return
	}
	rc.later(func() { rc.appendMessage(msg, domain.ErrorMessageFormat, true) })
}

func (rc *RunControl) appendMessage(msg string, format domain.OutputFormat, newline bool) {
	if rc.output == nil {
		return
	}
	if newline && (msg == "" || msg[len(msg)-1] != '\n') {
		msg += "\n"
	}
	rc.output.Append(msg, format)
}

func (rc *RunControl) beginSession() {
	if rc.tracer == nil {
		return
	}
	rc.spanCtx, rc.span = rc.tracer.Start(rc.ctx, "run "+rc.displayName,
		ports.WithAttribute("run_configuration", rc.runConfig.DisplayName()),
		ports.WithAttribute("project", rc.project.DisplayName()),
	)
}

func (rc *RunControl) endSession() {
	if span := rc.span; span != nil {
		rc.span = nil
		rc.later(span.End)
	}
}

// setState moves to next if the transition table allows it.
func (rc *RunControl) setState(next domain.RunControlState) bool {
	if !rc.state.CanTransitionTo(next) {
		err := zerr.With(zerr.With(domain.ErrInvalidTransition, "from", rc.state.String()), "to", next.String())
		if rc.span != nil {
			rc.span.RecordError(err)
		}
		return false
	}
	rc.state = next
	close(rc.changed)
	rc.changed = make(chan struct{})

	switch next {
	case domain.RunControlStopped:
		rc.pid = 0
		rc.endSession()
	case domain.RunControlFinished:
		rc.endSession()
	}

	observers := append(([]func(domain.RunControlState))(nil), rc.observers...)
	rc.later(func() {
		for _, fn := range observers {
			fn(next)
		}
	})
	return true
}

// State returns the current state.
func (rc *RunControl) State() domain.RunControlState {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.state
}

// IsRunning reports whether all workers started.
func (rc *RunControl) IsRunning() bool { return rc.State() == domain.RunControlRunning }

// IsStarting reports whether workers are being started.
func (rc *RunControl) IsStarting() bool { return rc.State() == domain.RunControlStarting }

// IsStopping reports whether workers are being stopped.
func (rc *RunControl) IsStopping() bool { return rc.State() == domain.RunControlStopping }

// IsStopped reports whether the control stopped and may be restarted.
func (rc *RunControl) IsStopped() bool { return rc.State() == domain.RunControlStopped }

// Failed reports whether a worker of the last session reported a failure.
func (rc *RunControl) Failed() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.failed
}

// SupportsReRunning reports whether every worker is done and supports a restart.
func (rc *RunControl) SupportsReRunning() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	for _, w := range rc.workers {
		if !w.reRunning || w.state != domain.WorkerDone {
			return false
		}
	}
	return true
}

// WaitStopped blocks until no worker is starting, running or stopping.
func (rc *RunControl) WaitStopped(ctx context.Context) error {
	return rc.waitFor(ctx, func(s domain.RunControlState) bool {
		switch s {
		case domain.RunControlInitialized, domain.RunControlStopped, domain.RunControlFinished:
			return true
		}
		return false
	})
}

// WaitFinished blocks until the control is finished.
func (rc *RunControl) WaitFinished(ctx context.Context) error {
	return rc.waitFor(ctx, func(s domain.RunControlState) bool { return s == domain.RunControlFinished })
}

func (rc *RunControl) waitFor(ctx context.Context, reached func(domain.RunControlState) bool) error {
	for {
		rc.mu.Lock()
		state, changed := rc.state, rc.changed
		rc.mu.Unlock()
		if reached(state) {
			return nil
		}
		select {
		case <-changed:
		case <-rc.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// DisplayName returns the name of the session.
func (rc *RunControl) DisplayName() string { return rc.displayName }

// Project returns the project of the run configuration.
func (rc *RunControl) Project() *domain.Project { return rc.project }

// RunConfiguration returns the configuration the session was created from.
func (rc *RunControl) RunConfiguration() *domain.RunConfiguration { return rc.runConfig }

// Device returns the device the session runs on.
func (rc *RunControl) Device() ports.Device { return rc.device }

// Runnable returns the application process description.
func (rc *RunControl) Runnable() domain.Runnable { return rc.runnable }

// IsDesktop reports whether the session runs on the local machine.
func (rc *RunControl) IsDesktop() bool {
	return rc.device == nil || rc.device.Type() == domain.DesktopDevice
}

// ApplicationPID returns the process id of the application, or 0.
func (rc *RunControl) ApplicationPID() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.pid
}

func (rc *RunControl) setApplicationPID(pid int) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.pid = pid
}

func (rc *RunControl) runContext() context.Context {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.ctx
}
