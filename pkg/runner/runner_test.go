package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fconsole/internal/testutils"
	"github.com/aretw0/fconsole/pkg/console"
	"github.com/aretw0/fconsole/pkg/domain"
	"github.com/aretw0/fconsole/pkg/runner"
)

const errExit = domain.ErrUser

var session = console.MustTable("session",
	console.Command{Name: "+", Help: "( x1 x2 - x3) Add.", Fn: func(c *console.Console) {
		c.Binop(func(a, b int64) int64 { return a + b })
	}},
	console.Command{Name: "EXIT", Help: "( - ?) Exit console.", Fn: func(c *console.Console) {
		c.Raise(errExit)
	}},
)

func setup(t *testing.T, rep runner.Reporter, cfg console.Config) *console.Console {
	t.Helper()
	c, err := console.New(cfg, console.WithPrinter(rep), console.WithUserCommands(session))
	require.NoError(t, err)
	return c
}

func TestRunner_TextTranscript(t *testing.T) {
	var out bytes.Buffer
	rep := runner.NewTextReporter(&out, runner.WithEcho(true))
	c := setup(t, rep, console.DefaultConfig())

	r := runner.NewRunner(runner.WithReporter(rep), runner.WithExitStatus(errExit))
	res, err := r.Run(context.Background(), c, strings.NewReader("3 4 + .\nFOO\n# hi\nexit\n1\n"))
	require.NoError(t, err)

	want := "\n>3 4 + . -> 7 " +
		"\n>FOO -> Error in command `FOO': bad command (1)" +
		"\n># hi -> " +
		"\n>exit -> Bye...\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, runner.Result{Lines: 4, Errors: 1, Last: errExit, Exited: true}, res)
}

func TestRunner_FinalLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	rep := runner.NewTextReporter(&out, runner.WithPrompt("ok>"))
	c := setup(t, rep, console.DefaultConfig())

	res, err := runner.NewRunner(runner.WithReporter(rep)).Run(context.Background(), c, strings.NewReader("1 2\n3"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Lines)
	assert.Equal(t, 3, c.Depth())
	assert.Equal(t, "\nok> -> \nok> -> \nok>", out.String())
}

func TestRunner_LineTooLong(t *testing.T) {
	var out bytes.Buffer
	rep := runner.NewJSONReporter(&out)
	cfg := console.DefaultConfig()
	cfg.MaxLine = 4
	c := setup(t, rep, cfg)

	res, err := runner.NewRunner(runner.WithReporter(rep)).Run(context.Background(), c, strings.NewReader("1 2 3 4\n5\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Lines)
	assert.Equal(t, 1, res.Errors)

	lines := decodeLines(t, &out)
	require.Len(t, lines, 2)
	assert.Equal(t, domain.ErrAccumulatorOverflow, lines[0].Status)
	assert.Equal(t, "1 2 ", lines[0].Line)
	assert.Empty(t, lines[0].Stack, "a truncated line is not processed")
	assert.Equal(t, []int64{5}, lines[1].Stack)
}

func TestRunner_LineTooLong_ProcessTruncated(t *testing.T) {
	var out bytes.Buffer
	rep := runner.NewJSONReporter(&out)
	cfg := console.DefaultConfig()
	cfg.MaxLine = 4
	c := setup(t, rep, cfg)

	r := runner.NewRunner(runner.WithReporter(rep), runner.WithProcessTruncated(true))
	res, err := r.Run(context.Background(), c, strings.NewReader("1 2 3 4\n1 FOOBAR\n9\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Lines)
	assert.Equal(t, 2, res.Errors)

	lines := decodeLines(t, &out)
	require.Len(t, lines, 3)
	assert.Equal(t, domain.ErrAccumulatorOverflow, lines[0].Status)
	assert.Empty(t, lines[0].Token)
	assert.Equal(t, []int64{1, 2}, lines[0].Stack)

	// The prefix "1 FO" fails on its own terms.
	assert.Equal(t, domain.ErrBadCommand, lines[1].Status)
	assert.Equal(t, "FO", lines[1].Token)
	assert.Equal(t, []int64{1, 2, 1}, lines[1].Stack)

	assert.Equal(t, domain.StatusOK, lines[2].Status)
	assert.Equal(t, []int64{1, 2, 1, 9}, lines[2].Stack)
}

func TestRunner_JSON(t *testing.T) {
	var out bytes.Buffer
	rep := runner.NewJSONReporter(&out)
	c := setup(t, rep, console.DefaultConfig())

	r := runner.NewRunner(runner.WithReporter(rep), runner.WithExitStatus(errExit))
	_, err := r.Run(context.Background(), c, strings.NewReader("1 2 .\nDROP DROP\nEXIT\n"))
	require.NoError(t, err)

	lines := decodeLines(t, &out)
	require.Len(t, lines, 3)

	assert.Equal(t, "1 2 .", lines[0].Line)
	assert.Equal(t, domain.StatusOK, lines[0].Status)
	assert.Equal(t, "OK", lines[0].Description)
	assert.Equal(t, "2 ", lines[0].Output)
	assert.Equal(t, []int64{1}, lines[0].Stack)

	assert.Equal(t, domain.ErrStackUnderflow, lines[1].Status)
	assert.Equal(t, "DROP", lines[1].Token)
	assert.Equal(t, "stack underflow", lines[1].Description)
	assert.Empty(t, lines[1].Output)

	assert.True(t, lines[2].Exit)
}

func TestRunner_StopOnError(t *testing.T) {
	rep := runner.NewTextReporter(io.Discard)
	c := setup(t, rep, console.DefaultConfig())

	r := runner.NewRunner(runner.WithReporter(rep), runner.WithStopOnError(true))
	res, err := r.Run(context.Background(), c, strings.NewReader("1\nFOO\n2\n"))
	require.ErrorIs(t, err, runner.ErrStopped)
	assert.ErrorIs(t, err, domain.ErrBadCommand)
	assert.Equal(t, 2, res.Lines)
}

func TestRunner_Cancel(t *testing.T) {
	rep := runner.NewTextReporter(io.Discard)
	c := setup(t, rep, console.DefaultConfig())

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := runner.NewRunner(runner.WithReporter(rep)).Run(ctx, c, pr)
		done <- err
	}()

	_, err := pw.Write([]byte("1 2\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop after cancellation")
	}
}

func TestRunner_ReadError(t *testing.T) {
	rep := runner.NewTextReporter(io.Discard)
	c := setup(t, rep, console.DefaultConfig())

	boom := errors.New("boom")
	_, err := runner.NewRunner(runner.WithReporter(rep)).Run(context.Background(), c, io.MultiReader(strings.NewReader("1\n"), errReader{boom}))
	assert.ErrorIs(t, err, boom)
}

func TestRunner_Sanitizer(t *testing.T) {
	var out bytes.Buffer
	rep := runner.NewJSONReporter(&out)
	c := setup(t, rep, console.DefaultConfig())

	r := runner.NewRunner(
		runner.WithReporter(rep),
		runner.WithSanitizer(&runner.Sanitizer{Newline: '\n', MapCR: true, RawKeys: true}),
	)
	// Up arrow, then "12", Enter as '\r', then Ctrl+D.
	res, err := r.Run(context.Background(), c, strings.NewReader("\x1b[A12\r34\x04ignored"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Lines)
	assert.Equal(t, []int64{12, 34}, testutils.StackInts(c))
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func decodeLines(t *testing.T, r io.Reader) []runner.JSONLine {
	t.Helper()
	var lines []runner.JSONLine
	dec := json.NewDecoder(r)
	for {
		var l runner.JSONLine
		err := dec.Decode(&l)
		if errors.Is(err, io.EOF) {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, l)
	}
}
