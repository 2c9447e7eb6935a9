package console

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration error returned by New.
var ErrInvalidConfig = errors.New("invalid console config")

// Config holds the build-time parameters of an interpreter instance.
// It is read once by New and never changes afterwards.
type Config struct {
	// MaxLine is the number of characters the input accumulator stores.
	MaxLine int
	// StackDepth is the operand stack capacity.
	StackDepth int
	// WordBits is the numeric word size: 8, 16, 32 or 64.
	WordBits int
	// WantHelp adds the HELP command to the default chain.
	WantHelp bool
	// Newline is the character that completes a line.
	Newline byte
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		MaxLine:    40,
		StackDepth: 8,
		WordBits:   32,
		WantHelp:   true,
		Newline:    '\n',
	}
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.MaxLine < 1 {
		return fmt.Errorf("%w: max line %d must be positive", ErrInvalidConfig, c.MaxLine)
	}
	if c.StackDepth < 1 {
		return fmt.Errorf("%w: stack depth %d must be positive", ErrInvalidConfig, c.StackDepth)
	}
	switch c.WordBits {
	case 8, 16, 32, 64:
	default:
		return fmt.Errorf("%w: word size %d must be 8, 16, 32 or 64", ErrInvalidConfig, c.WordBits)
	}
	return nil
}
