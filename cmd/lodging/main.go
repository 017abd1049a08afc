package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serveCmd := newServeCmd()

	rootCmd := &cobra.Command{
		Use:           "lodging",
		Short:         "Lodging booking backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Without a subcommand the API server runs.
		RunE: serveCmd.RunE,
	}

	rootCmd.AddCommand(
		serveCmd,
		newWorkerCmd(),
		newMigrateCmd(),
		newKeygenCmd(),
		newPromoteCmd(),
	)

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := newServeApp()
			app.Run()

			return nil
		},
	}
}

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the reservation event push consumer",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := newWorkerApp()
			app.Run()

			return nil
		},
	}
}
