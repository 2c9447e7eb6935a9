package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/fconsole/internal/cli"
	"github.com/aretw0/fconsole/internal/presentation/tui"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the available commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := cli.Tables(true)
		if err != nil {
			return err
		}
		md := cli.CommandsMarkdown(tables)

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}
		out, err := tui.NewRenderer(0)(md)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)

	commandsCmd.Flags().Bool("plain", false, "Print raw markdown")
}
