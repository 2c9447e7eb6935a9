package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/aretw0/fconsole/pkg/adapters/text"
	"github.com/aretw0/fconsole/pkg/domain"
)

// Separator is written between the echoed input and its output.
const Separator = " -> "

// TextReporter renders a session as a terminal transcript:
//
//	>3 4 + . -> 7
//	>FOO -> Error in command `FOO': bad command (1)
type TextReporter struct {
	*text.Printer

	w       io.Writer
	prompt  string
	echo    bool
	profile termenv.Profile
}

// TextReporterOption defines configuration for TextReporter.
type TextReporterOption func(*TextReporter)

// WithPrompt sets the prompt string. The default is ">".
func WithPrompt(prompt string) TextReporterOption {
	return func(r *TextReporter) {
		r.prompt = prompt
	}
}

// WithEcho makes the reporter echo accepted characters. Needed when the
// terminal is in raw mode or the input does not come from a terminal.
func WithEcho(echo bool) TextReporterOption {
	return func(r *TextReporter) {
		r.echo = echo
	}
}

// WithColorProfile enables coloured error lines.
func WithColorProfile(p termenv.Profile) TextReporterOption {
	return func(r *TextReporter) {
		r.profile = p
	}
}

// NewTextReporter creates a reporter writing to w (Stdout if nil).
func NewTextReporter(w io.Writer, opts ...TextReporterOption) *TextReporter {
	if w == nil {
		w = os.Stdout
	}
	r := &TextReporter{
		Printer: text.NewPrinter(w),
		w:       w,
		prompt:  ">",
		profile: termenv.Ascii,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TextReporter) Prompt() error {
	return r.write("\n" + r.prompt)
}

func (r *TextReporter) Echo(ch byte) error {
	if !r.echo {
		return nil
	}
	return r.write(string([]byte{ch}))
}

func (r *TextReporter) Begin() error {
	return r.write(Separator)
}

func (r *TextReporter) Report(o Outcome) error {
	if !o.Failed() {
		return r.Err()
	}
	msg := fmt.Sprintf("Error in command `%s': %s (%d)", o.Token, domain.Describe(o.Status), int(o.Status))
	return r.write(r.style(msg, "#fb7185"))
}

func (r *TextReporter) Exit(Outcome) error {
	return r.write("Bye...\n")
}

func (r *TextReporter) style(s, color string) string {
	if r.profile == termenv.Ascii {
		return s
	}
	return termenv.String(s).Foreground(r.profile.Color(color)).String()
}

// write goes through the embedded printer so that output and transcript
// share one error.
func (r *TextReporter) write(s string) error {
	r.Printer.Print(domain.PrintStr|domain.PrintNoSep, 0, s)
	return r.Err()
}
