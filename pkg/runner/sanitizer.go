package runner

import (
	"errors"
	"io"
)

// ErrInterrupted is returned when Ctrl+C arrives as a character, which
// happens when the terminal is in raw mode.
var ErrInterrupted = errors.New("interrupted")

const (
	keyInterrupt = 0x03
	keyEOF       = 0x04
	keyEscape    = 0x1b
)

// Sanitizer filters raw terminal input before it reaches the accumulator.
// It strips control characters and ANSI escape sequences (arrow keys and
// the like), which would otherwise become part of a token.
//
// Tab, newline and carriage return are kept. With MapCR set, a carriage
// return is turned into the newline character, as raw terminals send '\r'
// for Enter. With RawKeys set, Ctrl+C and Ctrl+D end the input.
//
// Backspace and DEL are dropped like other control characters: the
// accumulator has no erase operation, so a mistyped line must be sent and
// retyped.
type Sanitizer struct {
	Newline byte
	MapCR   bool
	RawKeys bool

	state escState
}

type escState uint8

const (
	escNone escState = iota
	escStart
	escCSI
)

// Filter returns the character to feed, and false if it should be dropped.
func (s *Sanitizer) Filter(ch byte) (byte, bool, error) {
	switch s.state {
	case escStart:
		if ch == '[' {
			s.state = escCSI
		} else {
			s.state = escNone
		}
		return 0, false, nil
	case escCSI:
		// Parameters and intermediates run until a final byte in 0x40..0x7e.
		if ch >= 0x40 && ch <= 0x7e {
			s.state = escNone
		}
		return 0, false, nil
	}

	switch {
	case ch == keyEscape:
		s.state = escStart
		return 0, false, nil
	case s.RawKeys && ch == keyInterrupt:
		return 0, false, ErrInterrupted
	case s.RawKeys && ch == keyEOF:
		return 0, false, io.EOF
	case ch == '\r' && s.MapCR:
		return s.Newline, true, nil
	case ch == s.Newline, ch == '\t', ch == '\n', ch == '\r':
		return ch, true, nil
	case ch < 0x20 || ch == 0x7f:
		return 0, false, nil
	}
	return ch, true, nil
}
