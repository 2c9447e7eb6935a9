package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/fconsole/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "fconsole",
	Short: "FConsole is a small Forth-style command console",
	Long: `FConsole reads lines of whitespace separated tokens, pushes numbers and
strings onto an operand stack and runs commands looked up by a 16 bit hash.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "fconsole.yaml", "Configuration file (ignored if missing)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log interpreter events to stderr")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().Bool("json", false, "Report lines as JSON-Lines")
	rootCmd.PersistentFlags().Bool("metrics", false, "Dump Prometheus metrics to stderr on exit")
}

// runOptions reads the persistent flags.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	debug, _ := flags.GetBool("debug")
	logFormat, _ := flags.GetString("log-format")
	jsonMode, _ := flags.GetBool("json")
	metrics, _ := flags.GetBool("metrics")
	return cli.RunOptions{
		ConfigPath: configPath,
		Debug:      debug,
		LogFormat:  logFormat,
		JSON:       jsonMode,
		Metrics:    metrics,
	}
}
