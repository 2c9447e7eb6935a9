package ports

import (
	"testing"

	"github.com/aretw0/fconsole/pkg/domain"
	"github.com/stretchr/testify/assert"
)

// RunPrinterContract verifies that a Printer implementation renders the
// standard kinds the way the reference terminal output does.
// newPrinter must return a fresh printer together with a function that
// returns everything it has written so far.
func RunPrinterContract(t *testing.T, newPrinter func() (Printer, func() string)) {
	t.Helper()

	tests := []struct {
		name string
		opt  domain.PrintOpt
		x    int64
		s    string
		want string
	}{
		{"Signed", domain.PrintSigned, -123, "", "-123 "},
		{"Unsigned", domain.PrintUnsigned, 123, "", "+123 "},
		{"Hex", domain.PrintHex, 0xabcd, "", "$abcd "},
		{"Str", domain.PrintStr, 0, "hello", "hello "},
		{"Static", domain.PrintStrStatic, 0, "help", "help "},
		{"Char", domain.PrintChar, 'A', "", "A "},
		{"Newline", domain.PrintNewline, 99, "", "\n"},
		{"NoSep", domain.PrintSigned | domain.PrintNoSep, 7, "", "7"},
		{"Unknown", domain.PrintOpt(0x40), 1, "x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, read := newPrinter()
			p.Print(tt.opt, tt.x, tt.s)
			assert.Equal(t, tt.want, read())
		})
	}
}
