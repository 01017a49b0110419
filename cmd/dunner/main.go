package main

import (
	"os"

	"github.com/spf13/cobra"

	"dunner/internal/interfaces/cli/migrate"
	"dunner/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dunner",
		Short: "Dunner - collections ticketing and invoice reconciliation",
		Long:  `Dunner manages collection ticket lifecycles, invoice tagging and batch follow-up notes with reminders.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
