package main

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an existing virtual environment.",
	Long:  `Removes the environment directory and everything in it after a y/n confirmation. There is no undo.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.Delete(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
