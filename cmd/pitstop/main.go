package main

import (
	"os"

	"github.com/spf13/cobra"

	"pitstop/internal/interfaces/cli/migrate"
	"pitstop/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pitstop",
		Short: "Pitstop - vehicle warranty management backend",
		Long:  `Pitstop is the warranty configuration and evaluation backend for garage management, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
