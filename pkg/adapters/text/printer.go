package text

import (
	"io"
	"strconv"

	"github.com/aretw0/fconsole/pkg/domain"
)

// Printer implements ports.Printer on top of an io.Writer, using the
// classic console formats: `-123 `, `+123 `, `$abcd `.
// The first write error is kept and later output is dropped.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print formats one value.
func (p *Printer) Print(opt domain.PrintOpt, x int64, s string) {
	if p.err != nil {
		return
	}
	out := Format(opt, x, s)
	if out == "" {
		return
	}
	_, p.err = io.WriteString(p.w, out)
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

// Format renders one Print call. Unknown kinds render as nothing.
func Format(opt domain.PrintOpt, x int64, s string) string {
	var out string
	switch opt.Kind() {
	case domain.PrintNewline:
		return "\n"
	case domain.PrintSigned:
		out = strconv.FormatInt(x, 10)
	case domain.PrintUnsigned:
		out = "+" + strconv.FormatUint(uint64(x), 10)
	case domain.PrintHex:
		out = "$" + strconv.FormatUint(uint64(x), 16)
	case domain.PrintStr, domain.PrintStrStatic:
		out = s
	case domain.PrintChar:
		out = string([]byte{byte(x)})
	default:
		return ""
	}
	if opt.Separated() {
		out += " "
	}
	return out
}
