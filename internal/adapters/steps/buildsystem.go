package steps

import (
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

var _ ports.BuildSystem = (*ProjectModel)(nil)

// ProjectModel tracks whether the project model is being re-parsed,
// for instance after the workspace file changed.
type ProjectModel struct {
	mu      sync.Mutex
	parsing bool
	nextID  int
	waiters map[int]func(bool)
}

// NewProjectModel returns an idle project model.
func NewProjectModel() *ProjectModel {
	return &ProjectModel{waiters: make(map[int]func(bool))}
}

// IsParsing implements ports.BuildSystem.
func (m *ProjectModel) IsParsing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.parsing
}

// BeginParse marks the start of a parse.
func (m *ProjectModel) BeginParse() {
	m.mu.Lock()
	m.parsing = true
	m.mu.Unlock()
}

// EndParse marks the end of a parse and fires the pending callbacks once.
func (m *ProjectModel) EndParse(success bool) {
	m.mu.Lock()
	m.parsing = false
	waiters := m.waiters
	m.waiters = make(map[int]func(bool))
	m.mu.Unlock()

	for _, fn := range waiters {
		fn(success)
	}
}

// OnParsingFinished implements ports.BuildSystem. When no parse is running,
// fn is called with true on a separate goroutine.
func (m *ProjectModel) OnParsingFinished(fn func(success bool)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.parsing {
		go fn(true)
		return func() {}
	}
	id := m.nextID
	m.nextID++
	m.waiters[id] = fn
	return func() {
		m.mu.Lock()
		delete(m.waiters, id)
		m.mu.Unlock()
	}
}
