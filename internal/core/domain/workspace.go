package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Workspace holds the projects of an orca.yaml file and their dependency order.
type Workspace struct {
	// Root is the directory containing the workspace file.
	Root string
	// Path is the absolute path of the workspace file.
	Path string

	// Devices are the declared devices keyed by id.
	Devices map[string]*DeviceConfig
	// Generators are the code generators keyed by name.
	Generators map[string]*Generator
	// ExtraCompilers are the generator invocations of the workspace.
	ExtraCompilers []*ExtraCompilerSpec

	projects       map[string]*Project
	names          []string
	executionOrder []string
}

// NewWorkspace creates an empty workspace rooted at root.
func NewWorkspace(root string) *Workspace {
	return &Workspace{
		Root:       root,
		Devices:    make(map[string]*DeviceConfig),
		Generators: make(map[string]*Generator),
		projects:   make(map[string]*Project),
	}
}

// AddProject adds a project to the workspace.
// It returns an error if a project with the same name already exists.
func (w *Workspace) AddProject(p *Project) error {
	if _, exists := w.projects[p.Name]; exists {
		return zerr.With(ErrDuplicateProjectName, "project", p.Name)
	}
	w.projects[p.Name] = p
	w.names = append(w.names, p.Name)
	return nil
}

// Project looks up a project by name.
func (w *Workspace) Project(name string) (*Project, bool) {
	p, ok := w.projects[name]
	return p, ok
}

// Projects returns the projects in declaration order.
func (w *Workspace) Projects() []*Project {
	out := make([]*Project, 0, len(w.names))
	for _, n := range w.names {
		out = append(out, w.projects[n])
	}
	return out
}

// Validate checks the dependency graph for missing projects and cycles.
// It populates the execution order if successful.
func (w *Workspace) Validate() error {
	w.executionOrder = make([]string, 0, len(w.projects))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		visited[name] = 1
		path = append(path, name)

		p, exists := w.projects[name]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", name)
		}

		for _, dep := range p.Dependencies {
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[name] = 2
		path = path[:len(path)-1]
		w.executionOrder = append(w.executionOrder, name)
		return nil
	}

	// Declaration order keeps the walk deterministic for disconnected projects.
	for _, name := range w.names {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

func buildCycleError(path []string, dep string) error {
	cyclePath := ""
	startIdx := slices.Index(path, dep)
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i] + " -> "
	}
	cyclePath += dep
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Walk yields projects in dependency order.
// It assumes Validate() has been called and returned nil.
func (w *Workspace) Walk() iter.Seq[*Project] {
	return func(yield func(*Project) bool) {
		for _, name := range w.executionOrder {
			if !yield(w.projects[name]) {
				return
			}
		}
	}
}

// ProjectOrder returns p and its transitive dependencies, dependencies first.
func (w *Workspace) ProjectOrder(p *Project) []*Project {
	return w.ProjectsOrder([]*Project{p})
}

// ProjectsOrder returns the given projects and their transitive dependencies in build order.
func (w *Workspace) ProjectsOrder(roots []*Project) []*Project {
	needed := make(map[string]bool)
	var mark func(name string)
	mark = func(name string) {
		if needed[name] {
			return
		}
		needed[name] = true
		if p, ok := w.projects[name]; ok {
			for _, dep := range p.Dependencies {
				mark(dep)
			}
		}
	}
	for _, p := range roots {
		mark(p.Name)
	}

	var out []*Project
	for p := range w.Walk() {
		if needed[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

// Generator looks up a code generator by name.
func (w *Workspace) Generator(name string) (*Generator, bool) {
	g, ok := w.Generators[name]
	return g, ok
}
