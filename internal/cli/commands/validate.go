package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logtally/pkg/config"
	"github.com/ccollicutt/logtally/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a LogTally configuration file without running analysis.

Checks:
  - YAML syntax
  - Threshold is a non-negative integer
  - Failure status is a 3-digit code
  - Failure marker is not empty
  - Log file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	// Load and validate config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Log file:               %s\n", cfg.LogFile)
	fmt.Fprintf(w, "  Export file:            %s\n", cfg.ExportFile)
	fmt.Fprintf(w, "  Failed login threshold: %d\n", cfg.FailedLoginThreshold)
	fmt.Fprintf(w, "  Failure status:         %s\n", cfg.FailureStatus)
	fmt.Fprintf(w, "  Failure marker:         %q\n", cfg.FailureMarker)

	// Check if the log file exists (warning only)
	if cfg.LogFile == parser.StdinName {
		return nil
	}
	info, err := os.Stat(cfg.LogFile)
	switch {
	case err != nil:
		fmt.Fprintf(w, "\nWarning: log file %s is not accessible: %v\n", cfg.LogFile, err)
	case info.IsDir():
		fmt.Fprintf(w, "\nWarning: log file %s is a directory\n", cfg.LogFile)
	default:
		fmt.Fprintf(w, "\nLog file found: %s (%d bytes)\n", cfg.LogFile, info.Size())
	}

	return nil
}
