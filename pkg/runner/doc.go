/*
Package runner implements the input loop and I/O orchestration for a console.

It acts as the bridge between the interpreter and the outside world. The
runner reads characters, hands them to the accumulator, processes each
completed line and presents the outcome through a pluggable Reporter.

# Key Components

  - Runner: the loop, with context cancellation and an exit status.
  - Reporter: decouples presentation (terminal transcript, JSON-Lines).
  - Sanitizer: strips terminal control sequences from raw input.

# Usage

	rep := runner.NewTextReporter(os.Stdout, runner.WithEcho(true))
	c, _ := console.New(cfg, console.WithPrinter(rep))

	r := runner.NewRunner(
		runner.WithReporter(rep),
		runner.WithExitStatus(cli.ErrUserExit),
	)
	if _, err := r.Run(ctx, c, os.Stdin); err != nil {
		log.Fatal(err)
	}
*/
package runner
