package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/fconsole/internal/cli"
)

var execCmd = &cobra.Command{
	Use:   "exec LINE...",
	Short: "Process each argument as one line",
	Long: `Processes the arguments as consecutive lines of one session and exits
non-zero if a line fails.`,
	Example: `  fconsole exec "3 4 + ." "$ff U."
  fconsole exec --json "1 2" ".S"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keepGoing, _ := cmd.Flags().GetBool("keep-going")
		_, err := cli.ExecLines(cmd.Context(), runOptions(cmd), args, keepGoing)
		return err
	},
}

func init() {
	rootCmd.AddCommand(execCmd)

	execCmd.Flags().BoolP("keep-going", "k", false, "Continue after a failing line")
}
