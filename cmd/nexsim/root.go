package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nexsim",
		Short: "nexsim - WEFE Nexus Living Lab decision support",
		Long: `nexsim is a command-line toolkit for exploring WEFE (Water, Energy,
Food, Ecosystems) Living Labs.

It scores regions against the four-pillar indicator framework, aggregates
the expected effects of selected policies, and allocates the interventions
needed to realize them at minimal cost.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newInitCommand())
	cmd.AddCommand(newSimulateCommand())
	cmd.AddCommand(newScoreCommand())
	cmd.AddCommand(newLabsCommand())
	cmd.AddCommand(newPoliciesCommand())
	cmd.AddCommand(newInterventionsCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newCompareCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
