package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/steptree"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of steptree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "steptree version %s\n", strings.TrimSpace(steptree.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
