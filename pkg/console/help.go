package console

import "github.com/aretw0/fconsole/pkg/domain"

var helpTable = MustTable("help",
	Command{Name: "HELP", Help: "( - ) List commands.", Fn: printHelp},
)

func printHelp(c *Console) {
	for _, t := range c.tables {
		for _, cmd := range t.cmds {
			c.PrintText(domain.PrintStrStatic, cmd.Name)
			c.PrintText(domain.PrintStrStatic|domain.PrintNoSep, cmd.Help)
			c.Print(domain.PrintNewline, 0)
		}
	}
}
