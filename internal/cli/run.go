package cli

import (
	"io"
	"os"
)

// RunOptions contains all the configuration for the run and exec commands.
type RunOptions struct {
	ConfigPath string
	JSON       bool
	Debug      bool
	Metrics    bool
	Quiet      bool
	Echo       bool
	// Raw reads the terminal one character at a time when stdin is a
	// terminal.
	Raw       bool
	LogFormat string

	// Streams default to the process's standard streams.
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

func (o *RunOptions) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.ErrOut == nil {
		o.ErrOut = os.Stderr
	}
}
