/*
Package fconsole is a small Forth-style command console for driving devices and services from a line of text.

A line such as `3 4 + .` is split into whitespace separated tokens. Each token goes down a chain of recognisers: numbers and strings are pushed onto an operand stack, and names are looked up in command tables by a 16 bit hash. The first failure stops the line and is reported as a status code together with the offending token.

# Key Features

  - Bounded: fixed line length and stack depth, chosen at construction.
  - Word sizes of 8, 16, 32 or 64 bits with two's complement wrapping.
  - Extensible: hosts add command tables or replace the recogniser chain.
  - Isolated: every Engine owns its own interpreter state.

# Usage

	add := console.MustTable("user",
		console.Command{Name: "+", Help: "( x1 x2 - x3) Add.", Fn: func(c *console.Console) {
			c.Binop(func(a, b int64) int64 { return a + b })
		}},
	)

	eng, err := fconsole.New(console.DefaultConfig(), fconsole.WithUserCommands(add))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := eng.Run(ctx, os.Stdin); err != nil {
		log.Fatal(err)
	}

# Architecture

  - pkg/console: accumulator, recognisers, hash dispatch and the operand stack.
  - pkg/runner: the input loop and reporters (text transcript, JSON-Lines).
  - pkg/observability: hooks for logging and Prometheus metrics.
  - cmd/fconsole: the command line front end.
*/
package fconsole
