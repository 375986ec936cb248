package buildmanager

import (
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// forwarder connects one queued step to the output and task sinks.
// Once disconnected it drops everything the step still emits.
type forwarder struct {
	output ports.OutputSink
	tasks  ports.TaskSink
	stamp  func(domain.OutputFormat) string

	mu        sync.RWMutex
	connected bool
}

var _ ports.StepOutput = (*forwarder)(nil)

func newForwarder(output ports.OutputSink, tasks ports.TaskSink, stamp func(domain.OutputFormat) string) *forwarder {
	return &forwarder{output: output, tasks: tasks, stamp: stamp, connected: true}
}

func (f *forwarder) AddOutput(text string, format domain.OutputFormat) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.connected {
		f.output.Append(f.stamp(format)+text, format)
	}
}

func (f *forwarder) AddTask(task domain.Task) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.connected {
		f.tasks.AddTask(task)
	}
}

func (f *forwarder) disconnect() {
	f.mu.Lock()
	f.connected = false
	f.mu.Unlock()
}
