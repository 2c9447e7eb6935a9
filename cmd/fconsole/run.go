package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/fconsole/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive console",
	Long: `Starts the console on stdin. On a terminal, characters are read one at a
time as they are typed; piped input is read as it arrives. Type 'exit' to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Quiet, _ = cmd.Flags().GetBool("quiet")
		opts.Echo, _ = cmd.Flags().GetBool("echo")
		lineMode, _ := cmd.Flags().GetBool("line")
		opts.Raw = !lineMode
		return cli.RunSession(opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
	runCmd.Flags().Bool("echo", false, "Echo input (useful with piped input)")
	runCmd.Flags().Bool("line", false, "Use the terminal's line editing instead of raw input")

	// 'run' is the default if no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
