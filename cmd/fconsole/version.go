package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/fconsole"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fconsole",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fconsole version %s\n", strings.TrimSpace(fconsole.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
