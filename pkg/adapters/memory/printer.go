package memory

import (
	"strings"
	"sync"

	"github.com/aretw0/fconsole/pkg/adapters/text"
	"github.com/aretw0/fconsole/pkg/domain"
)

// Call is one recorded Print invocation.
type Call struct {
	Opt domain.PrintOpt
	X   int64
	S   string
}

// Printer implements ports.Printer by recording every call in memory.
// Safe for concurrent use.
type Printer struct {
	mu    sync.Mutex
	calls []Call
}

// NewPrinter creates an empty recorder.
func NewPrinter() *Printer {
	return &Printer{}
}

// Print records the call.
func (p *Printer) Print(opt domain.PrintOpt, x int64, s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, Call{Opt: opt, X: x, S: s})
}

// Calls returns a copy of the recorded calls.
func (p *Printer) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}

// String renders the recorded calls as a terminal would show them.
func (p *Printer) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var b strings.Builder
	for _, c := range p.calls {
		b.WriteString(text.Format(c.Opt, c.X, c.S))
	}
	return b.String()
}

// Reset forgets everything recorded so far.
func (p *Printer) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = p.calls[:0]
}
