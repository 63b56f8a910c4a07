// Package cli provides the command-line interface for LogTally.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logtally/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(NewRootCommand())
}

func run(rootCmd *cobra.Command) int {
	commands.ExitCode = 0

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logtally",
		Short: "Tally requests and failed logins in access logs",
		Long: `LogTally is a batch access log analysis tool.

It reports:
  - Request counts per client address
  - The most frequently accessed endpoint
  - Addresses with repeated failed logins (suspicious activity)

Results are printed to the console and saved as CSV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewDiagnoseCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
