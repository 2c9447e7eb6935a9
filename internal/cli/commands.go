package cli

import (
	"github.com/aretw0/fconsole/pkg/console"
	"github.com/aretw0/fconsole/pkg/domain"
)

// ErrUserExit ends an interactive session.
const ErrUserExit = domain.ErrUser

// UserCommands is the command table the fconsole binary adds to the
// builtins.
var UserCommands = console.MustTable("user",
	console.Command{Name: "+", Help: "( x1 x2 - x3) Add values: x3 = x1 + x2.", Fn: func(c *console.Console) {
		c.Binop(func(a, b int64) int64 { return a + b })
	}},
	console.Command{Name: "-", Help: "( x1 x2 - x3) Subtract values: x3 = x1 - x2.", Fn: func(c *console.Console) {
		c.Binop(func(a, b int64) int64 { return a - b })
	}},
	console.Command{Name: "NEGATE", Help: "( d1 - d2) Negate signed value: d2 = -d1.", Fn: negate},
	console.Command{Name: "RAISE", Help: "( i - ) Raise value as exception.", Fn: func(c *console.Console) {
		c.Raise(domain.Status(c.PopInt()))
	}},
	console.Command{Name: "EXIT", Help: "( - ?) Exit console.", Fn: func(c *console.Console) {
		c.Raise(ErrUserExit)
	}},
)

// negate refuses the one value whose negation does not fit the word.
func negate(c *console.Console) {
	c.VerifyCanPop(1)
	if c.Peek(0).Int == c.MinInt() {
		c.Raise(domain.ErrNumOverflow)
	}
	c.Unop(func(x int64) int64 { return -x })
}
