package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the session greeting. Colours follow the terminal
// profile of w, so redirected output stays plain.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	title := termenv.String("FConsole " + version).Foreground(p.Color("#818cf8")).Bold()
	hint := termenv.String("`exit' to quit, `help' for commands.").Foreground(p.Color("#a78bfa"))
	if p == termenv.Ascii {
		title = termenv.String("FConsole " + version)
		hint = termenv.String("`exit' to quit, `help' for commands.")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprint(w, hint)
}

// Profile returns the colour profile to use for w.
func Profile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).ColorProfile()
}
