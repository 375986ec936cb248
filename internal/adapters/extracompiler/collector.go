package extracompiler

import (
	"bytes"
	"io"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// collector gathers the output of one generator run.
type collector struct {
	stdout io.Writer
	done   chan struct{}
	once   sync.Once

	mu     sync.Mutex
	stderr bytes.Buffer
	result domain.ProcessResult
	failed bool
}

func newCollector(stdout io.Writer) *collector {
	return &collector{stdout: stdout, done: make(chan struct{})}
}

var _ ports.LauncherListener = (*collector)(nil)

func (c *collector) OnProcessStarted() {}

func (c *collector) OnAppendMessage(text string, format domain.OutputFormat) {
	switch format {
	case domain.StdOutFormat:
		_, _ = io.WriteString(c.stdout, text)
	case domain.StdErrFormat:
		c.mu.Lock()
		c.stderr.WriteString(text)
		c.mu.Unlock()
	}
}

func (c *collector) OnProcessExited(exitCode int, status domain.ExitStatus) {
	c.mu.Lock()
	c.result = domain.ProcessResult{ExitCode: exitCode, ExitStatus: status}
	c.mu.Unlock()
	c.once.Do(func() { close(c.done) })
}

func (c *collector) OnError(err domain.ProcessError) {
	if err != domain.FailedToStart {
		return
	}
	c.mu.Lock()
	c.failed = true
	c.mu.Unlock()
	c.once.Do(func() { close(c.done) })
}

func (c *collector) stderrBytes() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return bytes.Clone(c.stderr.Bytes())
}
