package domain

// RunControlState is the state of a run session.
type RunControlState int

const (
	// RunControlInitialized is the state before the first start.
	RunControlInitialized RunControlState = iota
	// RunControlStarting means workers are being started.
	RunControlStarting
	// RunControlRunning means all workers are running or done.
	RunControlRunning
	// RunControlStopping means workers are being stopped.
	RunControlStopping
	// RunControlStopped means all workers are done and the run may be restarted.
	RunControlStopped
	// RunControlFinishing means workers are being stopped for good.
	RunControlFinishing
	// RunControlFinished is terminal.
	RunControlFinished
)

// String implements fmt.Stringer.
func (s RunControlState) String() string {
	switch s {
	case RunControlInitialized:
		return "RunControlState::Initialized"
	case RunControlStarting:
		return "RunControlState::Starting"
	case RunControlRunning:
		return "RunControlState::Running"
	case RunControlStopping:
		return "RunControlState::Stopping"
	case RunControlStopped:
		return "RunControlState::Stopped"
	case RunControlFinishing:
		return "RunControlState::Finishing"
	case RunControlFinished:
		return "RunControlState::Finished"
	default:
		return "RunControlState::Unknown"
	}
}

var runControlTransitions = map[RunControlState][]RunControlState{
	RunControlInitialized: {RunControlStarting, RunControlFinishing},
	RunControlStarting:    {RunControlRunning, RunControlStopping, RunControlFinishing},
	RunControlRunning:     {RunControlStopping, RunControlStopped, RunControlFinishing},
	RunControlStopping:    {RunControlStopped, RunControlFinishing},
	RunControlStopped:     {RunControlStarting, RunControlFinishing},
	RunControlFinishing:   {RunControlFinished},
	RunControlFinished:    {},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s RunControlState) CanTransitionTo(next RunControlState) bool {
	for _, allowed := range runControlTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// WorkerState is the state of a single run worker.
type WorkerState int

const (
	// WorkerInitialized means the worker has not been started.
	WorkerInitialized WorkerState = iota
	// WorkerStarting means the worker was asked to start.
	WorkerStarting
	// WorkerRunning means the worker reported it started.
	WorkerRunning
	// WorkerStopping means the worker was asked to stop.
	WorkerStopping
	// WorkerDone means the worker stopped or failed.
	WorkerDone
)

// String implements fmt.Stringer.
func (s WorkerState) String() string {
	switch s {
	case WorkerInitialized:
		return "Initialized"
	case WorkerStarting:
		return "Starting"
	case WorkerRunning:
		return "Running"
	case WorkerStopping:
		return "Stopping"
	case WorkerDone:
		return "Done"
	default:
		return "Unknown"
	}
}
