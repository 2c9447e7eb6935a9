/*
Package console implements the fconsole interpreter engine.

A Console accepts characters one at a time, assembles them into a line,
splits the line into whitespace-delimited tokens and hands each token to an
ordered chain of recognisers. The first recogniser that claims a token wins.
Handlers work on a small fixed-capacity operand stack, so input such as
`3 4 +` behaves like Forth.

# Abort

Any recogniser or command handler may call Raise to stop the current line.
Raise unwinds straight back to Process, which returns the status together
with the token being processed. Nothing inside the chain recovers.

# Usage

	c, err := console.New(console.DefaultConfig(),
		console.WithPrinter(text.NewPrinter(os.Stdout)),
		console.WithUserCommands(myTable),
	)
	if err != nil {
		log.Fatal(err)
	}

	for _, ch := range []byte("3 4 + .\n") {
		if c.Accept(ch) >= domain.StatusOK {
			rc, tok := c.Process(c.AcceptBuffer())
			if rc.IsError() {
				log.Printf("error in %q: %v", tok, rc)
			}
			c.AcceptClear()
		}
	}
*/
package console
