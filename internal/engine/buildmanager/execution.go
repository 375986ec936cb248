package buildmanager

import (
	"context"
	"fmt"
	"time"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// BuildLists queues the steps of lists and starts the queue. The preamble is
// printed when the queue is idle. It returns false when a step failed to
// initialize, in which case nothing was queued.
func (m *Manager) BuildLists(ctx context.Context, lists []*ports.BuildStepList, preamble []string) bool {
	var ok bool
	if !m.do(ctx, func() { ok = m.buildLists(lists, preamble) }) {
		return false
	}
	return ok
}

// AppendStep queues a single step under the given list name.
func (m *Manager) AppendStep(ctx context.Context, step ports.BuildStep, name string) bool {
	var ok bool
	if !m.do(ctx, func() {
		if ok = m.appendSteps([]ports.BuildStep{step}, []string{name}, nil); ok {
			m.startBuildQueue()
		}
	}) {
		return false
	}
	return ok
}

// Cancel stops the running step and drops the queue. Calling it again before
// the queue has finished has no effect.
func (m *Manager) Cancel() {
	m.do(context.Background(), m.cancel)
}

// AboutToRemoveProject cancels the whole queue if p is being built.
func (m *Manager) AboutToRemoveProject(p *domain.Project) {
	m.do(context.Background(), func() {
		if m.activeProjects[p] > 0 {
			m.cancel()
		}
	})
}

func (m *Manager) cancel() {
	if m.scheduled != nil {
		m.scheduled()
		m.scheduled = nil
		m.clearBuildQueue()
		return
	}
	if !m.running || m.canceling.IsSet() {
		return
	}
	m.canceling.Set()
	if m.current != nil {
		m.current.step.Cancel()
	}
}

func (m *Manager) buildLists(lists []*ports.BuildStepList, preamble []string) bool {
	var (
		steps []ports.BuildStep
		names []string
	)
	for _, l := range lists {
		for _, s := range l.Steps {
			steps = append(steps, s)
			names = append(names, l.Kind.DisplayName())
		}
		if l.Kind == domain.StepListDeploy {
			m.deploying = true
		}
	}

	if !m.appendSteps(steps, names, preamble) {
		m.deploying = false
		return false
	}
	m.startBuildQueue()
	return true
}

// appendSteps connects and initializes steps and queues them. On the first
// failing Init every step connected so far is disconnected and the queue is
// left untouched.
func (m *Manager) appendSteps(steps []ports.BuildStep, names []string, preamble []string) bool {
	if !m.running {
		if m.settings.ClearIssuesOnRebuild {
			for _, c := range domain.RebuildCategories {
				m.tasks.ClearTasks(c)
			}
		}
		for _, line := range preamble {
			m.output.Append(m.stamp(domain.NormalMessageFormat)+line, domain.NormalMessageFormat)
		}
	}

	entries := make([]*entry, 0, len(steps))
	for i, step := range steps {
		e := &entry{step: step, name: names[i], out: newForwarder(m.output, m.tasks, m.stamp)}
		entries = append(entries, e)
		if !step.Enabled() {
			continue
		}
		if err := step.Init(e.out); err != nil {
			m.message(fmt.Sprintf("Error while building/deploying project %s (kit: %s)",
				step.Project().DisplayName(), step.Target().DisplayName()), domain.StdErrFormat)
			m.message(fmt.Sprintf("When executing step \"%s\"", step.DisplayName()), domain.StdErrFormat)
			for _, connected := range entries {
				connected.out.disconnect()
			}
			return false
		}
	}

	for _, e := range entries {
		e.enabled = e.step.Enabled()
		m.queue.PushBack(e)
		if e.enabled {
			m.maxProgress++
		}
		m.increment(e.step)
	}
	return true
}

func (m *Manager) startBuildQueue() {
	if m.queue.Len() == 0 {
		m.notify(func(o ports.BuildObserver) { o.BuildQueueFinished(true) })
		return
	}

	if bs := m.parsingBuildSystem(); bs != nil {
		if m.scheduled != nil {
			m.scheduled()
		}
		m.scheduledID++
		id := m.scheduledID
		m.scheduled = bs.OnParsingFinished(func(success bool) {
			m.post(func() {
				if m.scheduled == nil || m.scheduledID != id {
					return
				}
				m.scheduled = nil
				if success {
					m.startBuildQueue()
				} else {
					m.clearBuildQueue()
				}
			})
		})
		return
	}

	if !m.running {
		m.started = m.now()
		m.progress = 0
		m.running = true
		m.allSucceeded = true
		m.setProgressText("")
		m.nextStep()
		return
	}
	m.setProgressText(msgProgress(m.progress, m.maxProgress))
}

func (m *Manager) parsingBuildSystem() ports.BuildSystem {
	seen := make(map[ports.BuildSystem]bool)
	for i := range m.queue.Len() {
		bs := m.queue.Peek(i).(*entry).step.BuildSystem()
		if bs == nil || seen[bs] {
			continue
		}
		seen[bs] = true
		if bs.IsParsing() {
			return bs
		}
	}
	return nil
}

func (m *Manager) nextStep() {
	if m.queue.Len() == 0 {
		m.running = false
		m.deploying = false
		m.previousProject = nil
		m.current = nil
		m.maxProgress = 0
		m.finishQueue(m.allSucceeded)
		return
	}

	e := m.queue.PopFront().(*entry)
	m.current = e
	m.skipDisabled = !e.enabled

	if p := e.step.Project(); p != m.previousProject {
		m.message(fmt.Sprintf("Running steps for project %s...", p.DisplayName()), domain.NormalMessageFormat)
		m.previousProject = p
	}

	if m.skipDisabled {
		m.message(fmt.Sprintf("Skipping disabled step %s.", e.step.DisplayName()), domain.NormalMessageFormat)
		m.nextBuildQueue(true)
		return
	}

	ctx := m.ctx
	go func() {
		err := e.step.Run(ctx, e.out)
		m.post(func() {
			if m.current == e {
				m.nextBuildQueue(err == nil)
			}
		})
	}()
}

// nextBuildQueue handles the completion of the current step.
func (m *Manager) nextBuildQueue(succeeded bool) {
	e := m.current

	if m.canceling.IsSet() {
		m.canceling.UnSet()
		m.message("Canceled build/deployment.", domain.ErrorMessageFormat)
		e.out.disconnect()
		m.decrement(e.step)
		m.setProgressText("Build/Deployment canceled")
		m.clearBuildQueue()
		return
	}

	e.out.disconnect()
	if !m.skipDisabled {
		m.progress++
	}
	m.setProgressText(msgProgress(m.progress, m.maxProgress))
	m.decrement(e.step)

	if m.skipDisabled || succeeded {
		m.nextStep()
		return
	}

	m.allSucceeded = false
	t := e.step.Target()
	failure := fmt.Sprintf("Error while building/deploying project %s (kit: %s)",
		e.step.Project().DisplayName(), t.DisplayName())
	m.message(failure, domain.StdErrFormat)
	if t != nil && !t.Kit.IsValid() {
		m.message(fmt.Sprintf("The kit %s has configuration issues which might be the root cause for this problem.",
			t.DisplayName()), domain.StdErrFormat)
	}
	m.message(fmt.Sprintf("When executing step \"%s\"", e.step.DisplayName()), domain.StdErrFormat)

	abort := m.settings.AbortOnError
	if !abort {
		for m.queue.Len() > 0 && m.queue.Front().(*entry).step.Target() == t {
			dropped := m.queue.PopFront().(*entry)
			dropped.out.disconnect()
			m.message(fmt.Sprintf("Skipping step \"%s\".", dropped.step.DisplayName()), domain.NormalMessageFormat)
			m.decrement(dropped.step)
		}
		abort = m.queue.Len() == 0
	}

	if abort {
		m.setProgressText(failure)
		m.clearBuildQueue()
		return
	}
	m.nextStep()
}

// clearBuildQueue drops every queued step and reports an unsuccessful finish.
func (m *Manager) clearBuildQueue() {
	for m.queue.Len() > 0 {
		e := m.queue.PopFront().(*entry)
		m.decrement(e.step)
		e.out.disconnect()
	}
	m.running = false
	m.deploying = false
	m.previousProject = nil
	m.current = nil
	m.maxProgress = 0
	m.finishQueue(false)
}

func (m *Manager) finishQueue(success bool) {
	m.progress = 0
	if !m.started.IsZero() {
		m.message(formatElapsed(m.now().Sub(m.started)), domain.NormalMessageFormat)
		m.started = time.Time{}
	}
	m.notify(func(o ports.BuildObserver) { o.BuildQueueFinished(success) })
}
