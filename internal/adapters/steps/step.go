// Package steps provides the command based build steps and their lists.
package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildStep = (*ProcessStep)(nil)

// ProcessStep runs one command of a step list on the local machine.
type ProcessStep struct {
	spec   domain.StepSpec
	kind   domain.StepListKind
	cfg    *domain.ProjectConfiguration
	system ports.BuildSystem

	launchers ports.LauncherFactory
	device    ports.Device
	progress  ports.Progress

	mu       sync.Mutex
	runnable domain.Runnable
	current  ports.Launcher
	canceled bool
}

// NewProcessStep creates the step described by spec of the kind list of cfg.
func NewProcessStep(
	spec domain.StepSpec,
	kind domain.StepListKind,
	cfg *domain.ProjectConfiguration,
	system ports.BuildSystem,
	launchers ports.LauncherFactory,
	device ports.Device,
	progress ports.Progress,
) *ProcessStep {
	return &ProcessStep{
		spec:      spec,
		kind:      kind,
		cfg:       cfg,
		system:    system,
		launchers: launchers,
		device:    device,
		progress:  progress,
	}
}

func (s *ProcessStep) DisplayName() string { return s.spec.Name }

func (s *ProcessStep) Enabled() bool { return s.spec.Enabled }

// Project returns the project owning the configuration.
func (s *ProcessStep) Project() *domain.Project {
	if t := s.Target(); t != nil {
		return t.Project
	}
	return nil
}

// Target returns the target owning the configuration.
func (s *ProcessStep) Target() *domain.Target {
	if s.cfg == nil {
		return nil
	}
	return s.cfg.Target
}

func (s *ProcessStep) Configuration() *domain.ProjectConfiguration { return s.cfg }

func (s *ProcessStep) BuildSystem() ports.BuildSystem { return s.system }

// Init resolves the command line. The working directory defaults to the
// build directory and then to the project directory.
func (s *ProcessStep) Init(out ports.StepOutput) error {
	if s.spec.Command == "" {
		out.AddOutput("No executable specified.\n", domain.ErrorMessageFormat)
		return zerr.With(domain.ErrNoExecutable, "step", s.spec.Name)
	}

	dir := s.spec.WorkingDir
	if dir == "" && s.cfg != nil {
		dir = s.cfg.BuildDir
	}
	if dir == "" {
		if p := s.Project(); p != nil {
			dir = p.Dir
		}
	}
	if dir != "" && !filepath.IsAbs(dir) {
		if p := s.Project(); p != nil {
			dir = filepath.Join(p.Dir, dir)
		}
	}

	s.mu.Lock()
	s.runnable = domain.Runnable{
		Executable:  s.spec.Command,
		Arguments:   s.spec.Arguments,
		WorkingDir:  dir,
		Environment: s.spec.Environment,
	}
	s.canceled = false
	s.mu.Unlock()
	return nil
}

// Run executes the command and blocks until it exits.
func (s *ProcessStep) Run(ctx context.Context, out ports.StepOutput) (err error) {
	s.mu.Lock()
	r := s.runnable
	s.mu.Unlock()

	vertex := s.progress.Vertex(fmt.Sprintf("%s: %s", s.Project().DisplayName(), s.spec.Name))
	defer func() { vertex.Done(err) }()

	if s.kind == domain.StepListBuild && r.WorkingDir != "" {
		if mkErr := os.MkdirAll(r.WorkingDir, 0o750); mkErr != nil {
			out.AddOutput(fmt.Sprintf("Could not create directory \"%s\"\n", r.WorkingDir), domain.ErrorMessageFormat)
			return zerr.With(zerr.Wrap(mkErr, domain.ErrProcessFailedToStart.Error()), "dir", r.WorkingDir)
		}
	}

	out.AddOutput(fmt.Sprintf("Starting: %s\n", r.CommandLine()), domain.NormalMessageFormat)

	l := s.launchers.NewLauncher()
	lis := newStepListener(out, vertex, ParserByName(s.spec.Parser, s.taskCategory()))
	l.SetListener(lis)

	s.mu.Lock()
	if s.canceled {
		s.mu.Unlock()
		return context.Canceled
	}
	s.current = l
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()
	}()

	l.Start(context.WithoutCancel(ctx), r, s.device)
	s.mu.Lock()
	if s.canceled {
		l.Stop()
	}
	s.mu.Unlock()

	select {
	case <-lis.done:
	case <-ctx.Done():
		l.Stop()
		<-lis.done
		return ctx.Err()
	}

	res, failed := lis.outcome()
	program := r.Executable
	switch {
	case failed:
		out.AddOutput(fmt.Sprintf("Could not start process \"%s\" %s.\n", program, l.ErrorString()), domain.ErrorMessageFormat)
		return zerr.With(zerr.With(domain.ErrProcessFailedToStart, "command", program), "reason", l.ErrorString())
	case res.ExitStatus == domain.CrashExit:
		out.AddOutput(fmt.Sprintf("The process \"%s\" crashed.\n", program), domain.ErrorMessageFormat)
		return zerr.With(domain.ErrProcessCrashed, "command", program)
	case res.ExitCode != 0:
		out.AddOutput(fmt.Sprintf("The process \"%s\" exited with code %d.\n", program, res.ExitCode), domain.ErrorMessageFormat)
		return zerr.With(zerr.With(domain.ErrProcessExitCode, "command", program), "exit_code", res.ExitCode)
	}
	out.AddOutput(fmt.Sprintf("The process \"%s\" exited normally.\n", program), domain.NormalMessageFormat)
	return nil
}

// Cancel stops the running command. A step canceled before it starts does not start.
func (s *ProcessStep) Cancel() {
	s.mu.Lock()
	l := s.current
	s.canceled = true
	s.mu.Unlock()
	if l != nil {
		l.Stop()
	}
}

func (s *ProcessStep) taskCategory() domain.TaskCategory {
	if s.kind == domain.StepListDeploy {
		return domain.CategoryDeployment
	}
	return domain.CategoryCompile
}
