package memory_test

import (
	"testing"

	"github.com/aretw0/fconsole/pkg/adapters/memory"
	"github.com/aretw0/fconsole/pkg/domain"
	"github.com/aretw0/fconsole/pkg/ports"
	"github.com/stretchr/testify/assert"
)

func TestMemoryPrinter_Contract(t *testing.T) {
	ports.RunPrinterContract(t, func() (ports.Printer, func() string) {
		p := memory.NewPrinter()
		return p, p.String
	})
}

func TestMemoryPrinter_CallsAndReset(t *testing.T) {
	p := memory.NewPrinter()
	p.Print(domain.PrintHex, 0xff, "")
	p.Print(domain.PrintStr, 0, "hi")

	assert.Equal(t, []memory.Call{
		{Opt: domain.PrintHex, X: 0xff},
		{Opt: domain.PrintStr, S: "hi"},
	}, p.Calls())

	p.Reset()
	assert.Empty(t, p.Calls())
	assert.Equal(t, "", p.String())
}
