// Package tasks implements the diagnostic sink shared by build steps and generators.
package tasks

import (
	"slices"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

var _ ports.TaskSink = (*Hub)(nil)

// Hub collects tasks per category.
type Hub struct {
	mu      sync.RWMutex
	tasks   map[domain.TaskCategory][]domain.Task
	order   []domain.TaskCategory
	onAdded []func(domain.Task)
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{tasks: make(map[domain.TaskCategory][]domain.Task)}
}

// OnTaskAdded registers fn to be called for every new task.
func (h *Hub) OnTaskAdded(fn func(domain.Task)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onAdded = append(h.onAdded, fn)
}

// AddTask records a diagnostic.
func (h *Hub) AddTask(task domain.Task) {
	h.mu.Lock()
	if _, ok := h.tasks[task.Category]; !ok {
		h.order = append(h.order, task.Category)
	}
	h.tasks[task.Category] = append(h.tasks[task.Category], task)
	listeners := slices.Clone(h.onAdded)
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(task)
	}
}

// ClearTasks removes all diagnostics of a category.
func (h *Hub) ClearTasks(category domain.TaskCategory) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.tasks, category)
	h.order = slices.DeleteFunc(h.order, func(c domain.TaskCategory) bool { return c == category })
}

// ErrorTaskCount counts error diagnostics in the given categories.
func (h *Hub) ErrorTaskCount(categories ...domain.TaskCategory) int {
	return h.count(categories, func(t domain.Task) bool { return t.Severity == domain.SeverityError })
}

// TaskCount counts all diagnostics in the given categories.
func (h *Hub) TaskCount(categories ...domain.TaskCategory) int {
	return h.count(categories, func(domain.Task) bool { return true })
}

func (h *Hub) count(categories []domain.TaskCategory, match func(domain.Task) bool) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, c := range categories {
		for _, t := range h.tasks[c] {
			if match(t) {
				n++
			}
		}
	}
	return n
}

// Tasks returns all diagnostics, grouped by category in first-seen order.
func (h *Hub) Tasks() []domain.Task {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []domain.Task
	for _, c := range h.order {
		out = append(out, h.tasks[c]...)
	}
	return out
}
