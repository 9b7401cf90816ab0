// Package app provides the entry point for the gofer command-line application.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gofer-sh/gofer/pkg/logger"
)

// NewRootCmd creates a new root command for the gofer CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "gofer",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "gofer runs spreadsheet, GitHub, and Linear errands from the command line",
		Long: `gofer is a command-line gofer for the SaaS chores around a development
workflow: reading and writing Google Sheets, filing GitHub issues, and
driving issues through Linear. Operations are described by small JSON
documents and always come back as a result envelope on stdout, so gofer
slots into scripts and automation without per-call error handling.

Credentials are resolved through a configurable chain of sources
(environment variables, the gh CLI, the OS keychain, 1Password); each
subcommand's help names the variables that steer its chain.`,
		Run: func(cmd *cobra.Command, _ []string) {
			// If no subcommand is provided, print help
			if err := cmd.Help(); err != nil {
				logger.Errorf("Error displaying help: %v", err)
			}
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// Reconfigure the logger now that the debug flag is parsed.
			logger.Initialize()
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Errorf("Error binding debug flag: %v", err)
	}

	rootCmd.AddCommand(newSheetsCommand())
	rootCmd.AddCommand(newGitHubCommand())
	rootCmd.AddCommand(newLinearCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
