package runner

import (
	"github.com/aretw0/fconsole/pkg/domain"
	"github.com/aretw0/fconsole/pkg/ports"
)

// Outcome describes one completed line.
type Outcome struct {
	Line   string        `json:"line"`
	Status domain.Status `json:"status"`
	Token  string        `json:"token,omitempty"`
	Stack  []int64       `json:"stack"`
}

// Failed reports whether the line ended with an error.
func (o Outcome) Failed() bool { return o.Status.IsError() }

// Reporter defines the strategy for presenting a session.
// This allows switching between Text (terminal transcript) and JSON
// (structured) modes. The interpreter prints through the embedded Printer
// while a line is processed.
type Reporter interface {
	ports.Printer

	// Prompt is shown before each line.
	Prompt() error

	// Echo shows an input character as it is accepted. The newline is never
	// echoed.
	Echo(ch byte) error

	// Begin is called after the newline, before the line is processed.
	Begin() error

	// Report presents the outcome of a line.
	Report(o Outcome) error

	// Exit presents the line that ended the session.
	Exit(o Outcome) error
}
