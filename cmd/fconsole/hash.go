package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/fconsole/internal/cli"
)

var hashCmd = &cobra.Command{
	Use:   "hash NAME...",
	Short: "Print the dispatch hash of command names",
	Long: `Prints the 16 bit hash used to look up each name, and flags names that
share a hash with a known command or with an earlier argument.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		known, err := cli.Tables(true)
		if err != nil {
			return err
		}

		clashes := 0
		for _, line := range cli.HashNames(args, known) {
			if line.Clash != "" {
				clashes++
				fmt.Fprintf(cmd.OutOrStdout(), "%s $%04X clashes with %s\n", line.Name, line.Hash, line.Clash)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s $%04X\n", line.Name, line.Hash)
		}
		if clashes > 0 {
			return fmt.Errorf("%d hash collision(s)", clashes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
