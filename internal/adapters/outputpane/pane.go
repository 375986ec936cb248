// Package outputpane renders build and run output to a terminal.
package outputpane

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/orca-repos/orca-sub012/internal/ui/output"
	"github.com/orca-repos/orca-sub012/internal/ui/style"
)

var _ ports.OutputSink = (*Pane)(nil)

// Pane writes formatted output to a single writer.
// Partial lines are held back until their line break arrives.
type Pane struct {
	mu      sync.Mutex
	out     *termenv.Output
	pending map[domain.OutputFormat]string
}

// New creates a Pane writing to w.
func New(w io.Writer) *Pane {
	return &Pane{
		out:     output.New(w),
		pending: make(map[domain.OutputFormat]string),
	}
}

// Append writes text in the given format.
func (p *Pane) Append(text string, format domain.OutputFormat) {
	p.mu.Lock()
	defer p.mu.Unlock()

	text = p.pending[format] + text
	cut := strings.LastIndexByte(text, '\n')
	if cut < 0 {
		p.pending[format] = text
		return
	}
	p.pending[format] = text[cut+1:]

	for line := range strings.SplitSeq(text[:cut], "\n") {
		p.writeLine(strings.TrimSuffix(line, "\r"), format)
	}
}

// Flush writes any held-back partial lines.
func (p *Pane) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for format, text := range p.pending {
		if text != "" {
			p.writeLine(text, format)
		}
		delete(p.pending, format)
	}
}

func (p *Pane) writeLine(line string, format domain.OutputFormat) {
	s := p.out.String(line)
	switch format {
	case domain.ErrorMessageFormat:
		s = s.Foreground(color(style.Red)).Bold()
	case domain.NormalMessageFormat:
		s = s.Foreground(color(style.Orca)).Bold()
	case domain.StdErrFormat:
		s = s.Foreground(color(style.Red))
	case domain.LogMessageFormat, domain.DebugFormat:
		s = s.Foreground(color(style.Slate))
	}
	_, _ = p.out.WriteString(s.String() + "\n")
}

// PrintTasks writes a summary of the collected diagnostics.
func (p *Pane) PrintTasks(tasks []domain.Task) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, t := range tasks {
		icon, c := style.Warning, style.Yellow
		if t.Severity == domain.SeverityError {
			icon, c = style.Cross, style.Red
		}
		line := fmt.Sprintf("%s %s", icon, t.Description)
		if loc := t.Location(); loc != "" {
			line = fmt.Sprintf("%s %s: %s", icon, loc, t.Description)
		}
		_, _ = p.out.WriteString(p.out.String(line).Foreground(color(c)).String() + "\n")
	}
}

func color(c lipgloss.Color) termenv.Color {
	return termenv.RGBColor(string(c))
}
