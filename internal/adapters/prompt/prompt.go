// Package prompt asks the user for confirmation on the terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"golang.org/x/term"
)

var _ ports.StopPrompter = (*Prompter)(nil)

// Prompter implements ports.StopPrompter with a yes/no question.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool

	mu        sync.Mutex
	assumeYes bool
}

// New creates a prompter reading answers from in. Questions are only asked
// when in is a terminal and no CI environment is detected.
func New(in *os.File, out io.Writer) *Prompter {
	ci := os.Getenv("CI")
	return &Prompter{
		in:          in,
		out:         out,
		interactive: term.IsTerminal(int(in.Fd())) && ci != "true" && ci != "1",
	}
}

// NewWithReader creates a prompter that always asks, reading answers from in.
func NewWithReader(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, interactive: true}
}

// SetAssumeYes makes every question answer itself with yes.
func (p *Prompter) SetAssumeYes(yes bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.assumeYes = yes
}

// ConfirmStop asks whether the named applications may be stopped. Without a
// terminal the answer is no.
func (p *Prompter) ConfirmStop(title, text string, names []string) bool {
	p.mu.Lock()
	yes := p.assumeYes
	p.mu.Unlock()
	if yes {
		return true
	}
	if !p.interactive {
		return false
	}

	_, _ = fmt.Fprintf(p.out, "%s\n%s\n", title, text)
	for _, n := range names {
		_, _ = fmt.Fprintf(p.out, "  %s\n", n)
	}
	_, _ = fmt.Fprint(p.out, "[y/N] ")

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
