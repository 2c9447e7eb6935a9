package console

import "github.com/aretw0/fconsole/pkg/domain"

var builtinTable = MustTable("builtin",
	Command{Name: ".", Help: "( x - ) Print signed value.", Fn: func(c *Console) {
		c.Print(domain.PrintSigned, c.PopInt())
	}},
	Command{Name: "U.", Help: "( u - ) Print unsigned value.", Fn: func(c *Console) {
		c.Print(domain.PrintUnsigned, c.PopInt())
	}},
	Command{Name: "$.", Help: "( u - ) Print value in hex.", Fn: func(c *Console) {
		c.Print(domain.PrintHex, c.PopInt())
	}},
	Command{Name: ".\"", Help: "( s - ) Print string.", Fn: func(c *Console) {
		s := c.Text(c.Peek(0))
		c.Pop()
		c.PrintText(domain.PrintStr, s)
	}},
	Command{Name: "EMIT", Help: "( c - ) Print character.", Fn: func(c *Console) {
		c.Print(domain.PrintChar|domain.PrintNoSep, c.PopInt())
	}},
	Command{Name: "CR", Help: "( - ) Print newline.", Fn: func(c *Console) {
		c.Print(domain.PrintNewline, 0)
	}},
	Command{Name: ".S", Help: "( - ) Print stack contents, bottom first.", Fn: func(c *Console) {
		for i := c.Depth() - 1; i >= 0; i-- {
			c.Print(domain.PrintSigned, c.Peek(i).Int)
		}
	}},
	Command{Name: "DEPTH", Help: "( - n) Push stack depth.", Fn: func(c *Console) {
		c.PushInt(int64(c.Depth()))
	}},
	Command{Name: "CLEAR", Help: "( ... - ) Empty the stack.", Fn: func(c *Console) {
		c.ClearStack()
	}},
	Command{Name: "DROP", Help: "( x - ) Remove top item.", Fn: func(c *Console) {
		c.Pop()
	}},
	Command{Name: "DUP", Help: "( x - x x) Duplicate top item.", Fn: func(c *Console) {
		c.Push(c.Peek(0))
	}},
	Command{Name: "OVER", Help: "( x1 x2 - x1 x2 x1) Copy second item to top.", Fn: func(c *Console) {
		c.Push(c.Peek(1))
	}},
	Command{Name: "SWAP", Help: "( x1 x2 - x2 x1) Exchange top two items.", Fn: func(c *Console) {
		a, b := c.Peek(1), c.Peek(0)
		c.SetTop(a)
		c.stack[c.sp-2] = b
	}},
	Command{Name: "PICK", Help: "( xu ... x0 u - xu ... x0 xu) Copy item u to top.", Fn: func(c *Console) {
		u := c.Peek(0).Int
		c.VerifyBounds(u, int64(c.Depth()-1))
		c.SetTop(c.Peek(int(u) + 1))
	}},
	Command{Name: "C@", Help: "( s i - b) Fetch byte i of a string.", Fn: func(c *Console) {
		i := c.Peek(0).Int
		b := c.Bytes(c.Peek(1))
		c.VerifyBounds(i, int64(len(b)))
		c.Pop()
		c.SetTop(domain.Int(int64(b[i])))
	}},
)

// Builtins returns the command table shipped with the core.
func Builtins() *Table { return builtinTable }
