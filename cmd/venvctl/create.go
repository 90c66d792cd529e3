package main

import (
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new virtual environment.",
	Long:  `Runs 'python3 -m venv <name>' in the working directory.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.Create(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
