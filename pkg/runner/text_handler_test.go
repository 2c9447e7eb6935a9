package runner

import (
	"bytes"
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fconsole/pkg/domain"
)

func TestTextReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	require.NoError(t, r.Report(Outcome{Status: domain.StatusOK}))
	require.NoError(t, r.Report(Outcome{Status: domain.StatusIgnoreEOL, Token: "#"}))
	assert.Empty(t, buf.String(), "signals are not errors")

	require.NoError(t, r.Report(Outcome{Status: domain.ErrStackOverflow, Token: "3"}))
	assert.Equal(t, "Error in command `3': stack overflow (4)", buf.String())
}

func TestTextReporter_Color(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf, WithColorProfile(termenv.TrueColor))

	require.NoError(t, r.Report(Outcome{Status: domain.ErrBadCommand, Token: "X"}))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Error in command `X'")
}

func TestTextReporter_Echo(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewTextReporter(&buf)
	require.NoError(t, quiet.Echo('a'))
	assert.Empty(t, buf.String())

	loud := NewTextReporter(&buf, WithEcho(true))
	require.NoError(t, loud.Echo('a'))
	assert.Equal(t, "a", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextReporter_WriteError(t *testing.T) {
	r := NewTextReporter(failWriter{})
	assert.Error(t, r.Prompt())
	assert.Error(t, r.Report(Outcome{}), "the first error sticks")
}
