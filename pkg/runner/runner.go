package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/fconsole/internal/logging"
	"github.com/aretw0/fconsole/pkg/console"
	"github.com/aretw0/fconsole/pkg/domain"
)

// Runner feeds an input stream to a console one character at a time and
// presents each completed line through a Reporter.
type Runner struct {
	// Reporter presents the session. If nil, a TextReporter on Stdout is used.
	Reporter Reporter

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// ExitStatus ends the session when a line returns it. Zero disables it.
	ExitStatus domain.Status

	// Sanitizer filters input characters. If nil, input is fed unchanged.
	Sanitizer *Sanitizer

	// StopOnError ends the session at the first failing line.
	StopOnError bool

	// ProcessTruncated runs the kept prefix of a line that overflowed the
	// accumulator. The line is still reported with ErrAccumulatorOverflow
	// unless processing fails with its own status.
	ProcessTruncated bool
}

// Result summarises a session.
type Result struct {
	Lines  int
	Errors int
	// Last is the status of the last processed line.
	Last   domain.Status
	Exited bool
}

// ErrStopped is returned when StopOnError ended the session.
var ErrStopped = errors.New("stopped on error")

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads in until EOF, an exit status, or cancellation of ctx. A final
// line without a newline is still processed. The console must print to the
// runner's reporter for output to be attached to the right line.
func (r *Runner) Run(ctx context.Context, c *console.Console, in io.Reader) (Result, error) {
	rep := r.resolveReporter()
	newline := c.Config().Newline

	src := newByteSource(in)
	defer src.stop()

	var res Result
	if err := rep.Prompt(); err != nil {
		return res, fmt.Errorf("prompt: %w", err)
	}

	for {
		chunk, err := src.next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return r.finish(c, rep, res)
			}
			if ctx.Err() != nil {
				r.Logger.Debug("runner cancelled", "err", ctx.Err())
			}
			return res, err
		}

		for _, ch := range chunk {
			if r.Sanitizer != nil {
				var keep bool
				ch, keep, err = r.Sanitizer.Filter(ch)
				if errors.Is(err, io.EOF) {
					return r.finish(c, rep, res)
				}
				if err != nil {
					return res, err
				}
				if !keep {
					continue
				}
			}

			if ch != newline {
				if err := rep.Echo(ch); err != nil {
					return res, fmt.Errorf("echo: %w", err)
				}
			}

			rc := c.Accept(ch)
			if rc == domain.StatusAcceptPending {
				continue
			}

			done, err := r.line(c, rep, rc, &res)
			if err != nil || done {
				return res, err
			}
		}
	}
}

// finish processes a pending unterminated line at the end of the input.
func (r *Runner) finish(c *console.Console, rep Reporter, res Result) (Result, error) {
	if !c.AcceptPending() {
		return res, nil
	}
	rc := c.Accept(c.Config().Newline)
	_, err := r.line(c, rep, rc, &res)
	return res, err
}

// line handles a completed line. It reports whether the session is over.
func (r *Runner) line(c *console.Console, rep Reporter, accepted domain.Status, res *Result) (bool, error) {
	buf := c.AcceptBuffer()
	o := Outcome{Line: string(buf)}
	defer c.AcceptClear()

	if err := rep.Begin(); err != nil {
		return true, fmt.Errorf("report: %w", err)
	}

	switch {
	case accepted == domain.ErrAccumulatorOverflow && !r.ProcessTruncated:
		// A truncated line would run a different command than the one typed.
		o.Status = accepted
		r.Logger.Warn("line too long", "max_line", c.Config().MaxLine)
	default:
		rc, tok := c.Process(buf)
		o.Status = rc
		if rc != domain.StatusOK {
			o.Token = string(tok)
		}
		if accepted == domain.ErrAccumulatorOverflow {
			r.Logger.Warn("line too long, processed prefix", "max_line", c.Config().MaxLine, "status", int(rc))
			if !rc.IsError() {
				o.Status = accepted
				o.Token = ""
			}
		}
	}
	for _, cell := range c.Stack() {
		o.Stack = append(o.Stack, cell.Int)
	}

	res.Lines++
	res.Last = o.Status
	if r.ExitStatus != domain.StatusOK && o.Status == r.ExitStatus {
		res.Exited = true
		return true, rep.Exit(o)
	}
	if o.Failed() {
		res.Errors++
	}
	if err := rep.Report(o); err != nil {
		return true, fmt.Errorf("report: %w", err)
	}
	if r.StopOnError && o.Failed() {
		return true, fmt.Errorf("%w: %w", ErrStopped, o.Status)
	}
	if err := rep.Prompt(); err != nil {
		return true, fmt.Errorf("prompt: %w", err)
	}
	return false, nil
}

func (r *Runner) resolveReporter() Reporter {
	if r.Reporter == nil {
		r.Reporter = NewTextReporter(nil)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r.Reporter
}
