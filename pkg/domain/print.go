package domain

// PrintOpt selects how a Printer formats a value.
type PrintOpt uint8

const (
	// PrintNewline prints a newline; the value is ignored and no separator follows.
	PrintNewline PrintOpt = iota
	// PrintSigned prints a signed integer, e.g. `-123 `.
	PrintSigned
	// PrintUnsigned prints an unsigned integer, e.g. `+123 `.
	PrintUnsigned
	// PrintHex prints a hex integer, e.g. `$abcd `.
	PrintHex
	// PrintStr prints a string owned by the line buffer.
	PrintStr
	// PrintStrStatic prints a static string (help text, descriptions).
	PrintStrStatic
	// PrintChar prints the value as a single character.
	PrintChar

	// PrintNoSep may be or-ed with any kind to suppress the trailing space.
	PrintNoSep PrintOpt = 0x80
)

// Kind strips the modifier bits.
func (o PrintOpt) Kind() PrintOpt { return o &^ PrintNoSep }

// Separated reports whether a trailing separator is wanted.
func (o PrintOpt) Separated() bool { return o&PrintNoSep == 0 }
