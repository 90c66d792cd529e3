package main

import (
	"fmt"

	"github.com/aretw0/venvctl"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of venvctl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "venvctl version %s\n", venvctl.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
