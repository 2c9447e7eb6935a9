package runner

import (
	"log/slog"

	"github.com/aretw0/fconsole/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithReporter configures how lines and their outcomes are presented.
// The console being run should print to the same reporter.
func WithReporter(rep Reporter) Option {
	return func(r *Runner) {
		r.Reporter = rep
	}
}

// WithExitStatus sets the status that ends the session, typically raised
// by an EXIT command.
func WithExitStatus(rc domain.Status) Option {
	return func(r *Runner) {
		r.ExitStatus = rc
	}
}

// WithSanitizer filters input characters before they are accepted.
func WithSanitizer(s *Sanitizer) Option {
	return func(r *Runner) {
		r.Sanitizer = s
	}
}

// WithStopOnError ends the session at the first failing line.
func WithStopOnError(stop bool) Option {
	return func(r *Runner) {
		r.StopOnError = stop
	}
}

// WithProcessTruncated runs what was kept of an overlong line instead of
// discarding it.
func WithProcessTruncated(process bool) Option {
	return func(r *Runner) {
		r.ProcessTruncated = process
	}
}
