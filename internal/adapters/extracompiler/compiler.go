// Package extracompiler runs single-source code generators and keeps the
// generated contents of their target files.
package extracompiler

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPollInterval is how often a running generator checks for cancellation.
const DefaultPollInterval = 200 * time.Millisecond

// SourcePlaceholder in generator arguments is replaced by the path of the
// staged copy of the source.
const SourcePlaceholder = "{source}"

var _ ports.ExtraCompiler = (*ProcessExtraCompiler)(nil)

// ProcessExtraCompiler feeds a source file to a generator process and reads
// back the files the generator wrote.
type ProcessExtraCompiler struct {
	source     string
	workingDir string
	targets    []string
	generator  *domain.Generator

	launchers ports.LauncherFactory
	device    ports.Device
	tasks     ports.TaskSink
	tracer    ports.Tracer
	poll      time.Duration

	mu          sync.Mutex
	contents    map[string][]byte
	compileTime time.Time
	onChange    []func(target string)
}

// Option configures a ProcessExtraCompiler.
type Option func(*ProcessExtraCompiler)

// WithPollInterval overrides DefaultPollInterval.
func WithPollInterval(d time.Duration) Option {
	return func(c *ProcessExtraCompiler) { c.poll = d }
}

// New creates the compiler described by spec. The generator is resolved
// through generators and processes are started on device.
func New(
	spec *domain.ExtraCompilerSpec,
	generators ports.GeneratorRegistry,
	launchers ports.LauncherFactory,
	device ports.Device,
	tasks ports.TaskSink,
	tracer ports.Tracer,
	opts ...Option,
) (*ProcessExtraCompiler, error) {
	gen, ok := generators.Generator(spec.Generator)
	if !ok {
		return nil, zerr.With(domain.ErrGeneratorNotFound, "generator", spec.Generator)
	}

	c := &ProcessExtraCompiler{
		source:     spec.Source,
		workingDir: spec.WorkingDir,
		generator:  gen,
		launchers:  launchers,
		device:     device,
		tasks:      tasks,
		tracer:     tracer,
		poll:       DefaultPollInterval,
		contents:   make(map[string][]byte, len(spec.Targets)),
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, t := range spec.Targets {
		if !filepath.IsAbs(t) {
			t = filepath.Join(spec.WorkingDir, t)
		}
		c.targets = append(c.targets, t)
		c.contents[t] = nil
	}
	c.loadExistingTargets()
	return c, nil
}

// loadExistingTargets seeds the contents with targets generated by an
// earlier run. The compile time is the oldest modification time.
func (c *ProcessExtraCompiler) loadExistingTargets() {
	for _, t := range c.targets {
		info, err := os.Stat(t)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(t)
		if err != nil {
			continue
		}
		if c.compileTime.IsZero() || info.ModTime().Before(c.compileTime) {
			c.compileTime = info.ModTime()
		}
		c.contents[t] = data
	}
}

// Source returns the source file path.
func (c *ProcessExtraCompiler) Source() string { return c.source }

// Targets returns the absolute paths of the generated files.
func (c *ProcessExtraCompiler) Targets() []string { return slices.Clone(c.targets) }

// Command returns the generator executable.
func (c *ProcessExtraCompiler) Command() string { return c.generator.Command }

// Arguments returns the generator arguments with the source placeholder
// replaced by staged.
func (c *ProcessExtraCompiler) Arguments(staged string) []string {
	args := make([]string, len(c.generator.Arguments))
	for i, a := range c.generator.Arguments {
		args[i] = strings.ReplaceAll(a, SourcePlaceholder, staged)
	}
	return args
}

// WorkingDirectory returns the directory the generator runs in.
func (c *ProcessExtraCompiler) WorkingDirectory() string { return c.workingDir }

// OnContentsChanged registers fn to be called with every target whose
// content changed.
func (c *ProcessExtraCompiler) OnContentsChanged(fn func(target string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, fn)
}

// Content returns the last generated content of target.
func (c *ProcessExtraCompiler) Content(target string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.contents[target]
	if !ok || data == nil {
		return nil, false
	}
	return slices.Clone(data), true
}

// CompileTime returns when the targets were last generated.
func (c *ProcessExtraCompiler) CompileTime() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compileTime
}

// SetContent stores data for target. Unknown targets are ignored. It reports
// whether the stored content changed.
func (c *ProcessExtraCompiler) SetContent(target string, data []byte) bool {
	c.mu.Lock()
	old, ok := c.contents[target]
	if !ok || (old != nil && string(old) == string(data)) {
		c.mu.Unlock()
		return false
	}
	c.contents[target] = slices.Clone(data)
	listeners := slices.Clone(c.onChange)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(target)
	}
	return true
}

// PrepareToRun stages a copy of contents in a fresh temporary directory and
// returns its path. The caller removes the directory.
func (c *ProcessExtraCompiler) PrepareToRun(contents []byte) (string, error) {
	dir, err := os.MkdirTemp("", "orca-gen-*")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrPrepareFailed.Error())
	}
	staged := filepath.Join(dir, filepath.Base(c.source))
	if err := os.WriteFile(staged, contents, 0o600); err != nil {
		_ = os.RemoveAll(dir)
		return "", zerr.With(zerr.Wrap(err, domain.ErrPrepareFailed.Error()), "path", staged)
	}
	return staged, nil
}

// Run reads the source file and regenerates the targets from it.
func (c *ProcessExtraCompiler) Run(ctx context.Context) error {
	data, err := os.ReadFile(c.source)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "source", c.source)
	}
	return c.RunWithContents(ctx, data)
}

// RunWithContents regenerates the targets from contents instead of the
// source file on disk.
func (c *ProcessExtraCompiler) RunWithContents(ctx context.Context, contents []byte) (err error) {
	ctx, span := c.tracer.Start(ctx, "generate "+filepath.Base(c.source),
		ports.WithAttribute("source", c.source),
		ports.WithAttribute("generator", c.generator.Name),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if c.Command() == "" {
		return zerr.With(domain.ErrNoExecutable, "generator", c.generator.Name)
	}

	staged, err := c.PrepareToRun(contents)
	if err != nil {
		return err
	}
	defer func() { _ = os.RemoveAll(filepath.Dir(staged)) }()

	res, err := c.runProcess(ctx, domain.Runnable{
		Executable: c.Command(),
		Arguments:  c.Arguments(staged),
		WorkingDir: c.workingDir,
		Input:      contents,
	}, span)
	if err != nil {
		return err
	}

	for _, task := range c.ParseIssues(res.stderr) {
		c.tasks.AddTask(task)
	}

	if !res.result.Success() {
		err = zerr.With(domain.ErrProcessExitCode, "exit_code", res.result.ExitCode)
		return zerr.With(err, "generator", c.generator.Name)
	}
	// Targets left behind by a failed run are partial or stale.
	c.HandleProcessFinished()
	return nil
}

// HandleProcessFinished reads the target files and stores their contents.
// Missing or unreadable targets are left out. When at least one target was
// read the compile time is updated.
func (c *ProcessExtraCompiler) HandleProcessFinished() {
	read := make(map[string][]byte, len(c.targets))
	for _, t := range c.targets {
		data, err := os.ReadFile(t)
		if err != nil {
			continue
		}
		read[t] = data
	}
	if len(read) == 0 {
		return
	}
	for _, t := range c.targets {
		if data, ok := read[t]; ok {
			c.SetContent(t, data)
		}
	}
	c.mu.Lock()
	c.compileTime = time.Now()
	c.mu.Unlock()
}

type processResult struct {
	result domain.ProcessResult
	stderr []byte
}

func (c *ProcessExtraCompiler) runProcess(ctx context.Context, r domain.Runnable, out ports.Span) (processResult, error) {
	l := c.launchers.NewLauncher()
	col := newCollector(out)
	l.SetListener(col)

	// Cancellation is observed by polling so the process is killed through
	// the launcher rather than by the command context.
	l.Start(context.WithoutCancel(ctx), r, c.device)

	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()
	for {
		select {
		case <-col.done:
			if col.failed {
				return processResult{}, zerr.With(
					zerr.With(domain.ErrProcessFailedToStart, "command", r.Executable),
					"reason", l.ErrorString(),
				)
			}
			return processResult{result: col.result, stderr: col.stderrBytes()}, nil
		case <-ticker.C:
			if ctx.Err() != nil {
				l.Stop()
				<-col.done
				return processResult{}, ctx.Err()
			}
		}
	}
}
