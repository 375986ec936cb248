package outputpane_test

import (
	"bytes"
	"testing"

	"github.com/orca-repos/orca-sub012/internal/adapters/outputpane"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func newTestPane(t *testing.T) (*outputpane.Pane, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	return outputpane.New(buf), buf
}

func TestPane_HoldsPartialLines(t *testing.T) {
	p, buf := newTestPane(t)

	p.Append("hello ", domain.StdOutFormat)
	assert.Empty(t, buf.String())

	p.Append("world\nnext", domain.StdOutFormat)
	assert.Equal(t, "hello world\n", buf.String())

	p.Flush()
	assert.Equal(t, "hello world\nnext\n", buf.String())
}

func TestPane_SeparatesFormats(t *testing.T) {
	p, buf := newTestPane(t)

	p.Append("out", domain.StdOutFormat)
	p.Append("err\n", domain.StdErrFormat)
	p.Append("\n", domain.StdOutFormat)

	assert.Equal(t, "err\nout\n", buf.String())
}

func TestPane_PrintTasks(t *testing.T) {
	p, buf := newTestPane(t)

	p.PrintTasks([]domain.Task{
		{Severity: domain.SeverityError, File: "main.c", Line: 3, Description: "expected ';'"},
		{Severity: domain.SeverityWarning, Description: "deprecated"},
	})

	assert.Equal(t, "✗ main.c:3: expected ';'\n! deprecated\n", buf.String())
}
