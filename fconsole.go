package fconsole

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/fconsole/internal/logging"
	"github.com/aretw0/fconsole/pkg/console"
	"github.com/aretw0/fconsole/pkg/domain"
	"github.com/aretw0/fconsole/pkg/observability"
	"github.com/aretw0/fconsole/pkg/runner"
)

// Version is the release of the fconsole module and binary.
var Version = "0.1.0"

// Engine is the high-level entry point for the library.
// It wires an interpreter instance to a reporter and an input loop.
type Engine struct {
	console   *console.Console
	reporter  runner.Reporter
	runner    *runner.Runner
	tables    []*console.Table
	hooks     []domain.Hooks
	logger    *slog.Logger
	exit      domain.Status
	sanitizer *runner.Sanitizer
	chain     []console.Recogniser
	stop      bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithReporter sets how lines are presented. The default is a text
// transcript on Stdout.
func WithReporter(rep runner.Reporter) Option {
	return func(e *Engine) {
		e.reporter = rep
	}
}

// WithUserCommands adds command tables after the builtins.
func WithUserCommands(tables ...*console.Table) Option {
	return func(e *Engine) {
		e.tables = append(e.tables, tables...)
	}
}

// WithRecognisers replaces the default recogniser chain.
func WithRecognisers(rs ...console.Recogniser) Option {
	return func(e *Engine) {
		e.chain = rs
	}
}

// WithHooks registers observability hooks. It may be given several times.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, hooks)
	}
}

// WithMetrics feeds the given Prometheus metrics.
func WithMetrics(m *observability.Metrics) Option {
	return WithHooks(m.Hooks())
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithExitStatus sets the status that ends Run.
func WithExitStatus(rc domain.Status) Option {
	return func(e *Engine) {
		e.exit = rc
	}
}

// WithSanitizer filters input characters in Run.
func WithSanitizer(s *runner.Sanitizer) Option {
	return func(e *Engine) {
		e.sanitizer = s
	}
}

// WithStopOnError makes Run end at the first failing line.
func WithStopOnError(stop bool) Option {
	return func(e *Engine) {
		e.stop = stop
	}
}

// New creates an Engine.
func New(cfg console.Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.reporter == nil {
		e.reporter = runner.NewTextReporter(nil)
	}

	copts := []console.Option{
		console.WithPrinter(e.reporter),
		console.WithLogger(e.logger),
		console.WithUserCommands(e.tables...),
		console.WithHooks(observability.Aggregate(e.hooks...)),
	}
	if e.chain != nil {
		copts = append(copts, console.WithRecognisers(e.chain...))
	}
	c, err := console.New(cfg, copts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing console: %w", err)
	}
	e.console = c

	ropts := []runner.Option{
		runner.WithReporter(e.reporter),
		runner.WithLogger(e.logger),
		runner.WithExitStatus(e.exit),
		runner.WithStopOnError(e.stop),
	}
	if e.sanitizer != nil {
		ropts = append(ropts, runner.WithSanitizer(e.sanitizer))
	}
	e.runner = runner.NewRunner(ropts...)
	return e, nil
}

// Console returns the underlying interpreter instance.
func (e *Engine) Console() *console.Console { return e.console }

// Eval processes one line and returns its status and the token being
// processed when the line ended. Output goes to the reporter's printer.
func (e *Engine) Eval(line string) (domain.Status, string) {
	return e.console.ProcessString(line)
}

// Run drives the interpreter from in until EOF, the exit status or
// cancellation of ctx.
func (e *Engine) Run(ctx context.Context, in io.Reader) (runner.Result, error) {
	return e.runner.Run(ctx, e.console, in)
}
