package steps

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
)

// OutputParser turns lines of standard error into tasks.
type OutputParser interface {
	// ParseLine returns the task described by line, if any.
	ParseLine(line string) (domain.Task, bool)
}

// ParserByName returns the parser registered under name. Unknown and empty
// names yield a parser that never matches.
func ParserByName(name string, category domain.TaskCategory) OutputParser {
	switch strings.ToLower(name) {
	case "gcc", "clang":
		return &GCCParser{Category: category}
	default:
		return nopParser{}
	}
}

var gccLine = regexp.MustCompile(
	`^(?P<file>[^:\s][^:]*):(?P<line>\d+):(?:\d+:)?\s*(?P<severity>fatal error|error|warning|note):\s*(?P<message>.*)$`)

// GCCParser understands the diagnostics of GCC and Clang.
type GCCParser struct {
	Category domain.TaskCategory
}

// ParseLine implements OutputParser. Notes are ignored.
func (p *GCCParser) ParseLine(line string) (domain.Task, bool) {
	m := gccLine.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return domain.Task{}, false
	}
	sev := m[gccLine.SubexpIndex("severity")]
	if sev == "note" {
		return domain.Task{}, false
	}
	n, _ := strconv.Atoi(m[gccLine.SubexpIndex("line")])
	task := domain.Task{
		Category:    p.Category,
		Severity:    domain.SeverityError,
		Description: m[gccLine.SubexpIndex("message")],
		File:        m[gccLine.SubexpIndex("file")],
		Line:        n,
	}
	if sev == "warning" {
		task.Severity = domain.SeverityWarning
	}
	return task, true
}

type nopParser struct{}

func (nopParser) ParseLine(string) (domain.Task, bool) { return domain.Task{}, false }

// lineBuffer splits a stream of chunks into complete lines.
type lineBuffer struct {
	mu      sync.Mutex
	partial strings.Builder
}

// feed appends text and returns the lines it completed.
func (b *lineBuffer) feed(text string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var lines []string
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			b.partial.WriteString(text)
			return lines
		}
		b.partial.WriteString(text[:i])
		lines = append(lines, b.partial.String())
		b.partial.Reset()
		text = text[i+1:]
	}
}

// rest returns the unterminated tail.
func (b *lineBuffer) rest() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.partial.String()
	b.partial.Reset()
	return s
}
