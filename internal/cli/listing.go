package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/fconsole/pkg/console"
)

// CommandsMarkdown lists the commands of the given tables as a markdown
// table, one section per table.
func CommandsMarkdown(tables []*console.Table) string {
	var b strings.Builder
	b.WriteString("# Commands\n")
	for _, t := range tables {
		fmt.Fprintf(&b, "\n## %s\n\n", t.Name())
		b.WriteString("| Name | Hash | Stack | Description |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, cmd := range t.Commands() {
			stack, desc := splitHelp(cmd.Help)
			fmt.Fprintf(&b, "| `%s` | `$%04X` | `%s` | %s |\n",
				escapeCell(cmd.Name), cmd.Hash(), escapeCell(stack), escapeCell(desc))
		}
	}
	return b.String()
}

// splitHelp separates a leading Forth stack comment from the description.
func splitHelp(help string) (stack, desc string) {
	help = strings.TrimSpace(help)
	if !strings.HasPrefix(help, "(") {
		return "", help
	}
	end := strings.Index(help, ")")
	if end < 0 {
		return "", help
	}
	return help[:end+1], strings.TrimSpace(help[end+1:])
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Tables returns the command tables of the fconsole binary in chain order.
func Tables(wantHelp bool) ([]*console.Table, error) {
	cfg := console.DefaultConfig()
	cfg.WantHelp = wantHelp
	c, err := console.New(cfg, console.WithUserCommands(UserCommands))
	if err != nil {
		return nil, err
	}
	return c.Tables(), nil
}

// HashLine is one entry of the hash report.
type HashLine struct {
	Name string
	Hash uint16
	// Clash names a known command with the same hash, if any.
	Clash string
}

// HashNames computes the hashes of names and checks them against each
// other and against the known tables.
func HashNames(names []string, known []*console.Table) []HashLine {
	owners := map[uint16]string{}
	for _, t := range known {
		for _, cmd := range t.Commands() {
			owners[cmd.Hash()] = cmd.Name
		}
	}

	out := make([]HashLine, 0, len(names))
	for _, name := range names {
		upper := strings.ToUpper(name)
		h := console.HashString(upper)
		line := HashLine{Name: upper, Hash: h}
		if owner, ok := owners[h]; ok && owner != upper {
			line.Clash = owner
		}
		if _, ok := owners[h]; !ok {
			owners[h] = upper
		}
		out = append(out, line)
	}
	return out
}
