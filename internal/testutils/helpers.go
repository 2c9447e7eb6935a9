package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/fconsole/pkg/adapters/memory"
	"github.com/aretw0/fconsole/pkg/console"
)

// NewConsole creates a console with the default configuration, adjusted by
// mutate, printing to a memory recorder. It fails the test immediately on
// error.
func NewConsole(t *testing.T, mutate func(*console.Config), opts ...console.Option) (*console.Console, *memory.Printer) {
	t.Helper()

	cfg := console.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	out := memory.NewPrinter()
	opts = append([]console.Option{console.WithPrinter(out)}, opts...)

	c, err := console.New(cfg, opts...)
	require.NoError(t, err, "Failed to create console")
	return c, out
}

// StackInts returns the integer values on the stack, bottom first, or nil
// for an empty stack.
func StackInts(c *console.Console) []int64 {
	var out []int64
	for _, cell := range c.Stack() {
		out = append(out, cell.Int)
	}
	return out
}
