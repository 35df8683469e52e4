package main

import (
	"os"

	"github.com/spf13/cobra"

	"tickform/internal/interfaces/cli/intake"
	"tickform/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tickform",
		Short: "Tickform - support ticket intake prototype",
		Long:  `Tickform is a support ticket intake service with an AI-assisted follow-up flow, plus an interactive terminal client.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		intake.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
