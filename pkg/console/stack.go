package console

import "github.com/aretw0/fconsole/pkg/domain"

// Stack operations raise on failure, so they may only be used by
// recognisers and command handlers while Process is running. Every check
// happens before the stack is touched.

// Depth returns the number of cells on the stack.
func (c *Console) Depth() int { return c.sp }

// Capacity returns the maximum stack depth.
func (c *Console) Capacity() int { return len(c.stack) }

// VerifyCanPop raises ErrStackUnderflow unless n cells are available.
func (c *Console) VerifyCanPop(n int) {
	if n > c.sp {
		c.Raise(domain.ErrStackUnderflow)
	}
}

// VerifyCanPush raises ErrStackOverflow unless n cells fit.
func (c *Console) VerifyCanPush(n int) {
	if c.sp+n > len(c.stack) {
		c.Raise(domain.ErrStackOverflow)
	}
}

// VerifyBounds raises ErrBadIndex unless 0 <= idx < size.
func (c *Console) VerifyBounds(idx, size int64) {
	if idx < 0 || idx >= size {
		c.Raise(domain.ErrBadIndex)
	}
}

// Push adds a cell to the top of the stack.
func (c *Console) Push(v domain.Cell) {
	c.VerifyCanPush(1)
	c.stack[c.sp] = v
	c.sp++
}

// PushInt pushes an integer, wrapped to the word size.
func (c *Console) PushInt(v int64) {
	c.Push(domain.Int(c.Wrap(v)))
}

// Pop removes and returns the top cell.
func (c *Console) Pop() domain.Cell {
	c.VerifyCanPop(1)
	c.sp--
	return c.stack[c.sp]
}

// PopInt pops the top cell and returns its integer value. A reference
// yields its handle.
func (c *Console) PopInt() int64 {
	return c.Pop().Int
}

// Peek returns the cell i places below the top (0 is the top).
func (c *Console) Peek(i int) domain.Cell {
	if i < 0 {
		c.Raise(domain.ErrBadIndex)
	}
	c.VerifyCanPop(i + 1)
	return c.stack[c.sp-1-i]
}

// SetTop replaces the top cell.
func (c *Console) SetTop(v domain.Cell) {
	c.VerifyCanPop(1)
	c.stack[c.sp-1] = v
}

// Unop replaces the top value with fn(top).
func (c *Console) Unop(fn func(x int64) int64) {
	c.VerifyCanPop(1)
	top := &c.stack[c.sp-1]
	*top = domain.Int(c.Wrap(fn(top.Int)))
}

// Binop pops the right operand and replaces the new top with fn(top, rhs).
func (c *Console) Binop(fn func(lhs, rhs int64) int64) {
	c.VerifyCanPop(2)
	rhs := c.stack[c.sp-1].Int
	lhs := c.stack[c.sp-2].Int
	c.sp--
	c.stack[c.sp-1] = domain.Int(c.Wrap(fn(lhs, rhs)))
}

// ClearStack empties the stack. It never fails.
func (c *Console) ClearStack() { c.sp = 0 }

// Stack returns a copy of the stack contents, bottom first.
func (c *Console) Stack() []domain.Cell {
	out := make([]domain.Cell, c.sp)
	copy(out, c.stack[:c.sp])
	return out
}

// Wrap truncates v to the word size and sign-extends it back, the way
// two's complement arithmetic on the target word would.
func (c *Console) Wrap(v int64) int64 {
	shift := 64 - uint(c.cfg.WordBits)
	return v << shift >> shift
}

// MaxUint is the largest unsigned word value.
func (c *Console) MaxUint() uint64 {
	return ^uint64(0) >> (64 - uint(c.cfg.WordBits))
}

// MaxInt is the largest signed word value.
func (c *Console) MaxInt() int64 {
	return int64(c.MaxUint() >> 1)
}

// MinInt is the smallest signed word value.
func (c *Console) MinInt() int64 {
	return -c.MaxInt() - 1
}
