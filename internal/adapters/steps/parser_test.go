package steps_test

import (
	"testing"

	"github.com/orca-repos/orca-sub012/internal/adapters/steps"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestGCCParser_ParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want domain.Task
		ok   bool
	}{
		{
			name: "error with column",
			line: "src/main.c:12:5: error: expected ';' before '}' token",
			want: domain.Task{
				Category: domain.CategoryCompile, Severity: domain.SeverityError,
				Description: "expected ';' before '}' token", File: "src/main.c", Line: 12,
			},
			ok: true,
		},
		{
			name: "warning without column",
			line: "util.h:3: warning: unused variable 'x'\r\n",
			want: domain.Task{
				Category: domain.CategoryCompile, Severity: domain.SeverityWarning,
				Description: "unused variable 'x'", File: "util.h", Line: 3,
			},
			ok: true,
		},
		{
			name: "fatal error",
			line: "a.c:1:10: fatal error: missing.h: No such file or directory",
			want: domain.Task{
				Category: domain.CategoryCompile, Severity: domain.SeverityError,
				Description: "missing.h: No such file or directory", File: "a.c", Line: 1,
			},
			ok: true,
		},
		{name: "note", line: "a.c:4:2: note: declared here"},
		{name: "plain text", line: "make: *** [all] Error 1"},
	}

	p := steps.ParserByName("gcc", domain.CategoryCompile)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParserByName_Unknown(t *testing.T) {
	p := steps.ParserByName("", domain.CategoryCompile)
	_, ok := p.ParseLine("a.c:1:1: error: boom")
	assert.False(t, ok)
}
