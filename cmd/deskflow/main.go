package main

import (
	"os"

	"github.com/spf13/cobra"

	"deskflow/internal/interfaces/cli/migrate"
	"deskflow/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskflow",
		Short: "DeskFlow - IT support ticketing and task tracking",
		Long:  `DeskFlow is a multi-role IT support platform with ticket workflows, development and test task tracking, and realtime notifications.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
