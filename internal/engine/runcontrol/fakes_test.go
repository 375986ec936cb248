package runcontrol_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/orca-repos/orca-sub012/internal/engine/runcontrol"
)

// eventLog records worker calls in order.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(e string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) Events() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

// fakeImpl reports started and stopped right away unless told otherwise.
type fakeImpl struct {
	name    string
	log     *eventLog
	onStart func(w *runcontrol.Worker)
	onStop  func(w *runcontrol.Worker)
}

func (f *fakeImpl) Start(w *runcontrol.Worker) {
	f.log.add("start:" + f.name)
	if f.onStart != nil {
		f.onStart(w)
		return
	}
	w.ReportStarted()
}

func (f *fakeImpl) Stop(w *runcontrol.Worker) {
	f.log.add("stop:" + f.name)
	if f.onStop != nil {
		f.onStop(w)
		return
	}
	w.ReportStopped()
}

// never leaves the worker waiting for a report.
func never(*runcontrol.Worker) {}

type recordingSink struct {
	mu   sync.Mutex
	text strings.Builder
}

func (s *recordingSink) Append(text string, _ domain.OutputFormat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text.WriteString(text)
}

func (s *recordingSink) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text.String()
}

type controlEnv struct {
	output *recordingSink
	log    *eventLog
	done   chan struct{}
}

func setupRunControlTest(t *testing.T, device ports.Device, opts ...runcontrol.Option) (*runcontrol.RunControl, *controlEnv) {
	t.Helper()
	env := &controlEnv{output: &recordingSink{}, log: &eventLog{}, done: make(chan struct{})}
	target := &domain.Target{Name: "host", Project: &domain.Project{Name: "app"}}
	runConfig := &domain.RunConfiguration{Name: "app", Target: target, Executable: "/build/app/app"}

	rc := runcontrol.New(runConfig, device, env.output, opts...)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer close(env.done)
		_ = rc.Run(ctx)
	}()
	t.Cleanup(cancel)
	return rc, env
}

func (e *controlEnv) worker(rc *runcontrol.RunControl, name string) (*runcontrol.Worker, *fakeImpl) {
	impl := &fakeImpl{name: name, log: e.log}
	return rc.AddWorker(name, impl), impl
}
