package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipecheck",
		Short: "Pipecheck - check your CI/CD challenge workflows",
		Long: `Pipecheck scores the challenge's GitHub Actions workflow files against
the expected pipeline setup and prints your progress.

With no arguments it checks ci.yml, build.yml, and deploy.yml in
.github/workflows/ and renders the progress report.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkWorkflows(cmd, "text")
		},
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newTestCommand())
	cmd.AddCommand(newServeCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
