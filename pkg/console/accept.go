package console

import "github.com/aretw0/fconsole/pkg/domain"

// Accumulator assembles characters into a line of bounded length.
// Its buffer is allocated once and always has room for a terminating nul.
type Accumulator struct {
	buf      []byte
	n        int
	newline  byte
	overflow bool
	complete bool
}

// NewAccumulator returns an accumulator storing up to max characters.
func NewAccumulator(max int, newline byte) *Accumulator {
	return &Accumulator{
		buf:     make([]byte, max+1),
		newline: newline,
	}
}

// Accept adds one character. It returns StatusAcceptPending until the
// newline arrives, then StatusOK, or ErrAccumulatorOverflow if characters
// were dropped on the way. Characters beyond the capacity are discarded but
// accumulation continues so that the newline still resets the line.
func (a *Accumulator) Accept(ch byte) domain.Status {
	if a.complete {
		a.Clear()
	}

	if ch == a.newline {
		a.buf[a.n] = 0
		a.complete = true
		if a.overflow {
			return domain.ErrAccumulatorOverflow
		}
		return domain.StatusOK
	}

	if a.n < len(a.buf)-1 {
		a.buf[a.n] = ch
		a.n++
	} else {
		a.overflow = true
	}
	return domain.StatusAcceptPending
}

// Clear restores the state right after construction.
func (a *Accumulator) Clear() {
	a.n = 0
	a.overflow = false
	a.complete = false
	a.buf[0] = 0
}

// Buffer returns the stored characters, without the terminating nul.
func (a *Accumulator) Buffer() []byte { return a.buf[:a.n] }

// Complete reports whether the newline has been seen.
func (a *Accumulator) Complete() bool { return a.complete }

// Len returns the number of stored characters.
func (a *Accumulator) Len() int { return a.n }

// Cap returns the maximum number of stored characters.
func (a *Accumulator) Cap() int { return len(a.buf) - 1 }
