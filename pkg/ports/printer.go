package ports

import "github.com/aretw0/fconsole/pkg/domain"

// Printer is the output callback supplied by the host.
//
// x carries the value for the numeric and character kinds. s carries the
// text for PrintStr and PrintStrStatic. Unsigned and hex values arrive
// already masked to the interpreter word size. Unknown kinds must be ignored
// and produce no output.
type Printer interface {
	Print(opt domain.PrintOpt, x int64, s string)
}

// PrinterFunc adapts a plain function to the Printer interface.
type PrinterFunc func(opt domain.PrintOpt, x int64, s string)

// Print calls f.
func (f PrinterFunc) Print(opt domain.PrintOpt, x int64, s string) {
	f(opt, x, s)
}

// Discard is a Printer that drops everything.
var Discard Printer = PrinterFunc(func(domain.PrintOpt, int64, string) {})
