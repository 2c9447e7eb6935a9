package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/fconsole"
	"github.com/aretw0/fconsole/internal/config"
	"github.com/aretw0/fconsole/internal/logging"
	"github.com/aretw0/fconsole/internal/presentation/tui"
	"github.com/aretw0/fconsole/pkg/observability"
	"github.com/aretw0/fconsole/pkg/runner"
)

// session is the wiring shared by interactive runs and one-shot exec.
type session struct {
	opts     RunOptions
	settings config.Settings
	logger   *slog.Logger
	metrics  *observability.Metrics
	engine   *fconsole.Engine
	out      io.Writer
}

func newSession(opts RunOptions, raw bool, extra ...fconsole.Option) (*session, error) {
	opts.defaults()

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger, err := createLogger(settings.LogLevel, opts.Debug, logging.Format(opts.LogFormat))
	if err != nil {
		return nil, err
	}

	s := &session{opts: opts, settings: settings, logger: logger, out: opts.Out}
	if raw {
		s.out = crlfWriter{w: opts.Out}
	}

	var rep runner.Reporter
	if opts.JSON {
		rep = runner.NewJSONReporter(s.out)
	} else {
		topts := []runner.TextReporterOption{
			runner.WithPrompt(settings.Prompt),
			runner.WithEcho(opts.Echo || raw),
		}
		if isTerminal(opts.Out) {
			topts = append(topts, runner.WithColorProfile(tui.Profile(opts.Out)))
		}
		rep = runner.NewTextReporter(s.out, topts...)
	}

	eopts := []fconsole.Option{
		fconsole.WithReporter(rep),
		fconsole.WithLogger(logger),
		fconsole.WithUserCommands(UserCommands),
		fconsole.WithExitStatus(ErrUserExit),
	}
	if opts.Debug {
		eopts = append(eopts, fconsole.WithHooks(observability.LogHooks(logger)))
	}
	if opts.Metrics {
		s.metrics = observability.NewMetrics()
		eopts = append(eopts, fconsole.WithMetrics(s.metrics))
	}
	if raw {
		eopts = append(eopts, fconsole.WithSanitizer(&runner.Sanitizer{
			Newline: settings.Console.Newline,
			MapCR:   true,
			RawKeys: true,
		}))
	}
	eopts = append(eopts, extra...)

	s.engine, err = fconsole.New(settings.Console, eopts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// run drives the engine and reports the summary. It returns the result so
// that callers can derive an exit code.
func (s *session) run(ctx context.Context, in io.Reader) (runner.Result, error) {
	res, err := s.engine.Run(ctx, in)
	s.logger.Debug("session finished",
		"lines", res.Lines,
		"errors", res.Errors,
		"exited", res.Exited,
		"status", int(res.Last),
	)
	if s.metrics != nil {
		if werr := s.metrics.WriteText(s.opts.ErrOut); werr != nil {
			s.logger.Warn("failed to write metrics", "error", werr)
		}
	}
	return res, err
}

// RunSession executes an interactive session on the configured streams.
func RunSession(opts RunOptions) error {
	opts.defaults()

	raw := false
	restore := func() {}
	if f, ok := opts.In.(*os.File); ok && opts.Raw && !opts.JSON {
		var err error
		restore, raw, err = rawTerminal(f)
		if err != nil {
			return err
		}
	}
	defer restore()

	s, err := newSession(opts, raw)
	if err != nil {
		return err
	}
	if !opts.JSON && !opts.Quiet {
		tui.PrintBanner(s.out, fconsole.Version)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	_, err = s.run(sigCtx, opts.In)
	if sig := sigCtx.Signal(); sig != nil {
		s.logger.Info("session interrupted", "signal", sig.String())
	}
	if isInterrupted(err) && !opts.JSON {
		fmt.Fprint(s.out, "\n")
	}
	return handleExecutionError(err)
}

// ExecLines processes each argument as one line and returns an error if
// any line failed. With keepGoing unset it stops at the first failure.
func ExecLines(ctx context.Context, opts RunOptions, lines []string, keepGoing bool) (runner.Result, error) {
	opts.Echo = !opts.JSON
	s, err := newSession(opts, false, fconsole.WithStopOnError(!keepGoing))
	if err != nil {
		return runner.Result{}, err
	}

	res, err := s.run(ctx, strings.NewReader(strings.Join(lines, "\n")+"\n"))
	if !opts.JSON {
		fmt.Fprintln(s.out)
	}
	if err != nil {
		return res, err
	}
	if res.Errors > 0 {
		return res, fmt.Errorf("%d of %d lines failed", res.Errors, res.Lines)
	}
	return res, nil
}
