package steps_test

import (
	"testing"

	"github.com/orca-repos/orca-sub012/internal/adapters/steps"
	"github.com/stretchr/testify/assert"
)

func TestProjectModel_CallbacksFireOnce(t *testing.T) {
	m := steps.NewProjectModel()
	assert.False(t, m.IsParsing())

	m.BeginParse()
	assert.True(t, m.IsParsing())

	var results []bool
	m.OnParsingFinished(func(ok bool) { results = append(results, ok) })
	cancel := m.OnParsingFinished(func(bool) { t.Fatal("removed callback fired") })
	cancel()

	m.EndParse(true)
	assert.False(t, m.IsParsing())
	assert.Equal(t, []bool{true}, results)

	m.BeginParse()
	m.EndParse(false)
	assert.Equal(t, []bool{true}, results)
}

func TestProjectModel_IdleFiresImmediately(t *testing.T) {
	m := steps.NewProjectModel()
	fired := make(chan bool, 1)
	m.OnParsingFinished(func(ok bool) { fired <- ok })
	assert.True(t, <-fired)
}
