package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/orca-repos/orca-sub012/internal/adapters/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Golden(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("build started") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("stop these applications first") },
			goldenName: "warn_basic",
		},
		{
			name: "error chain",
			log: func(lg *logger.Logger) {
				lg.Error(zerr.Wrap(errors.New("step init failed"), "failed to queue build steps"))
			},
			goldenName: "error_chain",
		},
		{
			name: "error metadata",
			log: func(lg *logger.Logger) {
				lg.Error(zerr.With(zerr.With(zerr.New("unknown kit"), "target", "device"), "kit", "arm64"))
			},
			goldenName: "error_metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("queued")
	lg.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "queued", first["msg"])
	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "boom", second["error"])
}

func TestLogger_SetOutputKeepsJSONMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Warn("careful")

	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			got := make([]string, 0, len(entries))
			for _, e := range entries {
				got = append(got, e.Message)
			}
			assert.Equal(t, tt.wantMessages, got)
		})
	}
}

func TestFormatErrorEntries_MultilineMessage(t *testing.T) {
	out := logger.FormatErrorEntries([]logger.ErrorEntry{
		{Message: "first\nsecond"},
		{Message: "cause"},
	})
	assert.Equal(t, "Error: first\n       second\n\n  Caused by:\n    → cause", out)
}
