package extracompiler

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/orca-repos/orca-sub012/internal/adapters/watcher"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory creates the compilers of a workspace.
type Factory struct {
	launchers ports.LauncherFactory
	tasks     ports.TaskSink
	tracer    ports.Tracer
	logger    ports.Logger
	opts      []Option
}

// NewFactory creates a Factory. Compilers it creates share opts.
func NewFactory(launchers ports.LauncherFactory, tasks ports.TaskSink, tracer ports.Tracer, logger ports.Logger, opts ...Option) *Factory {
	return &Factory{launchers: launchers, tasks: tasks, tracer: tracer, logger: logger, opts: opts}
}

// ForWorkspace creates one compiler per extra compiler of ws, running on device.
func (f *Factory) ForWorkspace(ws *domain.Workspace, device ports.Device) (*Set, error) {
	s := &Set{tasks: f.tasks, logger: f.logger}
	for _, spec := range ws.ExtraCompilers {
		c, err := New(spec, ws, f.launchers, device, f.tasks, f.tracer, f.opts...)
		if err != nil {
			return nil, zerr.With(err, "source", spec.Source)
		}
		s.compilers = append(s.compilers, c)
	}
	return s, nil
}

// Set is the group of compilers of one workspace.
type Set struct {
	compilers []*ProcessExtraCompiler
	tasks     ports.TaskSink
	logger    ports.Logger
}

// Compilers returns the compilers in declaration order.
func (s *Set) Compilers() []*ProcessExtraCompiler { return s.compilers }

// ForSource returns the compilers reading path.
func (s *Set) ForSource(path string) []*ProcessExtraCompiler {
	path = filepath.Clean(path)
	var out []*ProcessExtraCompiler
	for _, c := range s.compilers {
		if filepath.Clean(c.Source()) == path {
			out = append(out, c)
		}
	}
	return out
}

// RunAll clears the generator tasks and runs every compiler once. Failures
// are logged and returned joined.
func (s *Set) RunAll(ctx context.Context) error {
	s.tasks.ClearTasks(domain.CategoryExtraCompiler)
	return s.run(ctx, s.compilers)
}

func (s *Set) run(ctx context.Context, compilers []*ProcessExtraCompiler) error {
	var errs []error
	for _, c := range compilers {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := c.Run(ctx); err != nil {
			s.logger.Error(err)
			errs = append(errs, err)
			continue
		}
		s.logger.Info("Generated " + filepath.Base(c.Source()))
	}
	return errors.Join(errs...)
}

// Watch re-runs the compilers of changed sources below root until ctx ends.
func (s *Set) Watch(ctx context.Context, w ports.Watcher, root string) error {
	if err := w.Start(ctx, root); err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	changed := make(chan []string, 1)
	d := watcher.NewDebouncer(watcher.DefaultWindow, func(paths []string) {
		select {
		case changed <- paths:
		case <-ctx.Done():
		}
	})

	go func() {
		for ev := range w.Events() {
			if ev.Operation == ports.OpRemove || len(s.ForSource(ev.Path)) == 0 {
				continue
			}
			d.Add(ev.Path)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-changed:
			var due []*ProcessExtraCompiler
			for _, p := range paths {
				due = append(due, s.ForSource(p)...)
			}
			_ = s.run(ctx, due)
		}
	}
}
