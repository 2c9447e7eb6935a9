package runner

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/fconsole/pkg/adapters/memory"
	"github.com/aretw0/fconsole/pkg/domain"
)

// JSONReporter emits one JSON object per line (JSON-Lines). Interpreter
// output is captured and attached to the line that produced it.
type JSONReporter struct {
	*memory.Printer

	Encoder *json.Encoder
}

// JSONLine is the wire shape of a reported line.
type JSONLine struct {
	Outcome
	Description string `json:"description"`
	Output      string `json:"output"`
	Exit        bool   `json:"exit,omitempty"`
}

// NewJSONReporter creates a reporter writing to w (Stdout if nil).
func NewJSONReporter(w io.Writer) *JSONReporter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONReporter{
		Printer: memory.NewPrinter(),
		Encoder: json.NewEncoder(w),
	}
}

func (r *JSONReporter) Prompt() error      { return nil }
func (r *JSONReporter) Echo(ch byte) error { return nil }

func (r *JSONReporter) Begin() error {
	r.Reset()
	return nil
}

func (r *JSONReporter) Report(o Outcome) error {
	return r.emit(o, false)
}

func (r *JSONReporter) Exit(o Outcome) error {
	return r.emit(o, true)
}

func (r *JSONReporter) emit(o Outcome, exit bool) error {
	if o.Stack == nil {
		o.Stack = []int64{}
	}
	return r.Encoder.Encode(JSONLine{
		Outcome:     o,
		Description: domain.Describe(o.Status),
		Output:      r.String(),
		Exit:        exit,
	})
}
