package steps

import (
	"io"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// stepListener forwards launcher events of a running step.
type stepListener struct {
	out    ports.StepOutput
	vertex ports.Vertex
	parser OutputParser
	lines  lineBuffer

	done chan struct{}
	once sync.Once

	mu      sync.Mutex
	result domain.ProcessResult
	failed bool
}

var _ ports.LauncherListener = (*stepListener)(nil)

func newStepListener(out ports.StepOutput, vertex ports.Vertex, parser OutputParser) *stepListener {
	return &stepListener{out: out, vertex: vertex, parser: parser, done: make(chan struct{})}
}

func (l *stepListener) OnProcessStarted() {}

func (l *stepListener) OnAppendMessage(text string, format domain.OutputFormat) {
	switch format {
	case domain.StdOutFormat:
		_, _ = io.WriteString(l.vertex.Stdout(), text)
	case domain.StdErrFormat:
		_, _ = io.WriteString(l.vertex.Stderr(), text)
		for _, line := range l.lines.feed(text) {
			l.parse(line)
		}
	}
	l.out.AddOutput(text, format)
}

func (l *stepListener) OnProcessExited(exitCode int, status domain.ExitStatus) {
	if rest := l.lines.rest(); rest != "" {
		l.parse(rest)
	}
	l.mu.Lock()
	l.result = domain.ProcessResult{ExitCode: exitCode, ExitStatus: status}
	l.mu.Unlock()
	l.once.Do(func() { close(l.done) })
}

func (l *stepListener) OnError(err domain.ProcessError) {
	if err != domain.FailedToStart {
		return
	}
	l.mu.Lock()
	l.failed = true
	l.mu.Unlock()
	l.once.Do(func() { close(l.done) })
}

func (l *stepListener) parse(line string) {
	if task, ok := l.parser.ParseLine(line); ok {
		l.out.AddTask(task)
	}
}

func (l *stepListener) outcome() (domain.ProcessResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.result, l.failed
}
