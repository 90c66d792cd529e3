package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/venvctl/internal/cli"
	"github.com/aretw0/venvctl/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "venvctl",
	Short: "A simple command-line tool to manage Python virtual environments.",
	Long: `venvctl lists, creates and deletes Python virtual environments in a directory.

A directory is treated as a virtual environment when it contains bin/activate.
Creation is delegated to 'python3 -m venv'; deletion asks for confirmation first.`,
	// Unknown commands fall through to help instead of failing.
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Println(err)
	os.Exit(1)
}

func init() {
	// Persistent flags (available to all commands)
	config.RegisterFlags(rootCmd.PersistentFlags())
}

// newSession resolves the configuration of the running command.
// Arguments are valid by now, so neither a config error nor a failed
// operation should print usage.
func newSession(cmd *cobra.Command) (*cli.Session, error) {
	cmd.SilenceUsage = true
	cfg, err := config.Resolve(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return cli.NewSession(cfg,
		cli.WithOutput(cmd.OutOrStdout()),
		cli.WithInput(cmd.InOrStdin()),
	), nil
}
